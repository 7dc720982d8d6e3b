package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type BackgroundTag struct{}

var BackgroundTagComponent = NewComponent[BackgroundTag]()
