// Package control holds the interactive widgets: single-line input fields,
// scrollable menus and multi-field forms.
//
// Each control consumes one terminal.Event at a time through HandleEvent and
// eventually commits a value. Until then Peek and Take return
// ErrOutputNotReady; after commit the value can be peeked any number of
// times, and Take hands it over once and marks the control consumed. Reset
// returns a control to editing.
package control
