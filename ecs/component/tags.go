package component

// AvatarTag marks the avatar's entity, including while it plays a death or
// goal sequence without a physics body.
type AvatarTag struct{}

var AvatarTagComponent = NewComponent[AvatarTag]()

type BackgroundTag struct{}

var BackgroundTagComponent = NewComponent[BackgroundTag]()
