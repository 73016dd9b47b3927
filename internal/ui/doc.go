// Package ui is the Bubble Tea host for the dashboard.
//
// Pieces:
//   - AppModel: root model; routes keys to overlays, then the keybind
//     system, then the dashboard, and performs every layout write
//   - DashboardView: draws the panel grid and adapts mouse gestures to the
//     drag coordinator
//   - KeybindRegistry / KeyHandler: single keys and SPC-leader sequences,
//     filtered by edit mode
//   - FocusManager: the selected panel across the rendered sequence
//   - Overlay: modals (reset confirmation, layout settings)
//
// Panels are supplied as Slot funcs keyed by id; the package knows nothing
// about what they display.
package ui
