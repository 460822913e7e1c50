// Package sprig is a component layer for a retained-mode 2D scene graph on
// [Ebitengine].
//
// Nodes carry color, opacity and a content size. Behavior is attached to a
// node as a [Component] instead of being chosen by node type, and components
// stay in sync with the node through explicit setters and per-node
// notification channels.
//
// # Quick start
//
//	scene := sprig.NewScene()
//	box := sprig.NewColorNode("box", sprig.Color{R: 1, A: 1}, sprig.Size{Width: 80, Height: 40})
//	scene.Root().AddChild(box)
//	sprig.Run(scene, sprig.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// # Components
//
// A component embeds [BaseComponent] and is attached with
// [Node.AddComponent]. Tags are unique per node, not globally, and a
// component belongs to at most one node: adding a component that already has
// an owner panics with [ErrComponentOwned].
//
//	q := sprig.NewRenderQuad(sprig.Size{Width: 10, Height: 10}, sprig.ColorWhite)
//	node.AddComponent(q)        // q.Owner() == node
//	node.RemoveComponent(q)     // q.Owner() == nil
//
// OnAdd runs after the owner is set and is the place to subscribe to the
// node's signals ([Node.OnContentSizeChanged] and friends). OnRemove runs
// before the owner is cleared and must cancel those subscriptions.
//
// # Color and opacity
//
// Opacity multiplies down the tree; color does not cascade. The color a
// [RenderQuad] writes into its vertices is the node's color premultiplied by
// its displayed opacity. Changing a node's opacity refreshes every
// [ColorUpdater] in its subtree before SetOpacity returns.
//
// # Threading
//
// sprig is single-threaded. All setters, notifications and geometry updates
// run inline on the goroutine driving the game loop.
//
// [Ebitengine]: https://ebitengine.org
package sprig
