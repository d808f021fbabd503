package main

import (
	"oss.terrastruct.com/shapearea/areacli"
	"oss.terrastruct.com/shapearea/lib/xmain"
)

func main() {
	xmain.Main(areacli.Run)
}
