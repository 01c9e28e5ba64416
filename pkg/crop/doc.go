// Package crop trims a recording to its active window.
//
// The active window is bounded by the first and last sample whose absolute
// magnitude gradient reaches a threshold, a fraction of the recording's own
// peak gradient. The window is then widened on both sides by a guard band
// proportional to the recording length.
//
// # Usage
//
//	res, err := crop.Crop(rec, crop.Params{TriggerPercentage: 0.1, GuardsPercentage: 0.05})
//	if err != nil {
//	    return err
//	}
//	// res.Recording is the cropped copy; res.Gradient, res.Threshold and
//	// res.Bounds describe how the window was found.
//
// [Crop] has no side effects. Rendering and persistence are done by callers
// from the returned [Result].
package crop
