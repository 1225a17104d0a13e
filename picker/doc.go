// SPDX-License-Identifier: Unlicense OR MIT

/*
Package picker implements a circular picker widget for Gio.

A Picker holds the state: its value, the progress angle and any tap
animation in flight. Dragging around the dial sets the value directly;
tapping animates the progress arc to the tapped position. Style paints
a Picker:

	var p = picker.New(dial.Config{Max: 24 * 60, Step: 5, Mode: dial.TimeOfDay})

	func layoutPicker(gtx layout.Context, th *material.Theme) layout.Dimensions {
		if p.Update(gtx) {
			fmt.Println("picked", p.Label())
		}
		return picker.Circled(th, p).Layout(gtx)
	}
*/
package picker
