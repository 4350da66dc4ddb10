// Package panes composes terminal layouts out of nested containers.
//
// A layout is a tree of containers ([HSplit], [VSplit], [FloatContainer],
// [ConditionalContainer], [Frame]) whose leaves are [Window]s. Each Window
// hosts one [UIControl] that produces styled lines of text. A render pass
// asks every container for its [Dimension] along each axis, splits the
// available space, and paints the result into a [Screen]. Floats are painted
// last, on top of the base layout.
//
// The package owns no terminal and no event loop. Hand the finished [Screen]
// to a [Sink] (see the tcellscreen and textout packages) and drive
// [Layout.Render] from whatever loop reads input.
package panes
