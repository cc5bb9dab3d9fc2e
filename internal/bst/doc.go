// Package bst implements the animated binary search tree engine.
//
// Structural commands are not applied instantly. They are played back as
// timed traversals that the caller advances one frame at a time:
//
//   - [Tree.Insert]: replays the root-to-parent walk as arrow hops, then
//     commits the new node
//   - [Tree.Search]: highlights one path node per step and publishes the
//     outcome as a notification
//   - [Tree.Update]: advances positions, the active traversal, colors and
//     the notification by dt seconds
//   - [Tree.Draw]: renders the current frame onto a [Surface]
//
// # Example
//
//	tree := bst.New(bst.DefaultParams())
//	tree.Insert(50)
//	tree.Insert(30)
//	for !tree.Idle() {
//		tree.Update(1.0 / 60)
//	}
//	tree.Search(30)
//
// # Thread Safety
//
// Tree is NOT thread-safe. All calls are expected from the goroutine that
// drives the frame loop.
package bst
