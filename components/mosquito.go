package components

import (
	"github.com/automoto/skeeter/motion"
	"github.com/yohamta/donburi"
)

// MosquitoData is the moving figure: eased position plus a heading that snaps
// on every tap.
type MosquitoData struct {
	Motion  *motion.Controller
	Heading float64 // degrees, [0, 360)
}

var Mosquito = donburi.NewComponentType[MosquitoData]()
