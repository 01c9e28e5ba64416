// Package diagplot renders the diagnostic figure for one cropped recording.
//
// The figure has three stacked panels:
//
//   - Input: every channel of the source recording with dashed markers for
//     the left/right triggers and guards
//   - Gradient: the absolute magnitude gradient with the trigger level
//   - Output: every channel of the cropped recording
//
// The x axis is in milliseconds when the sampling interval is known.
package diagplot
