package session

// Package session owns one labeling session: the open dataset folder, its label
// store, the discovered image list and the cursor into it. It is independent of
// any UI toolkit; the window drives it and renders the View it returns.
//
// Every mutating call persists the label file immediately, and Close flushes it
// once more.
