package tags

import "github.com/yohamta/donburi"

var (
	Mosquito = donburi.NewTag().SetName("Mosquito")
)
