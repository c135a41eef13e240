// Package fbopick reproduces, and can patch, a y-axis error that appears
// when a window click is mapped to world space through an offscreen render
// target (FBO) whose height differs from the window's.
//
// The mapping has two stages. The click is first unprojected with the FBO
// camera over the whole window, giving FBO-local pixels. That point is then
// unprojected with the world camera over the whole FBO. Unprojection flips
// y against a height before normalizing:
//
//	y' = height - y - 1
//
// [Unproject] uses the height of the viewport it is given. [UnprojectLegacy]
// uses the height of the window reported by a [Display], which is only
// right when the viewport is the window. In [ModeLegacy] the second stage
// therefore lands (windowH - fboH) * worldH / fboH world units too high.
//
// # Running
//
//	cfg, _ := fbopick.LoadConfig("")
//	if err := fbopick.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Left click adds a circle at the unprojected point, right click clears.
// F toggles between legacy and fixed unprojection. A white crosshair marks
// where the click actually happened, so the offset is visible.
//
// # Scripts
//
// [LoadScript] parses YAML click scripts that inject input through the same
// path as the mouse, which makes the bug reproducible without a human:
//
//	steps:
//	  - {action: click, x: 0, y: 0}
//	  - {action: wait, frames: 5}
//	  - {action: screenshot, label: legacy}
//	  - {action: mode, mode: fixed}
//	  - {action: click, x: 0, y: 0}
//	  - {action: screenshot, label: fixed}
//	  - {action: quit}
package fbopick
