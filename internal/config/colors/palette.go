package colors

// palette holds the Kanagawa palette used by the wave preset
var palette = struct {
	sumiInk1, sumiInk2, sumiInk3, sumiInk4, sumiInk6 string
	waveBlue1, winterBlue, winterYellow, winterRed   string
	fujiGray, fujiWhite, oniViolet, crystalBlue      string
	springGreen, carpYellow, waveRed, waveAqua2      string
	dragonBlue, roninYellow, samuraiRed, lightBlue   string
}{
	sumiInk1:     "#181820",
	sumiInk2:     "#1A1A22",
	sumiInk3:     "#1F1F28",
	sumiInk4:     "#2A2A37",
	sumiInk6:     "#54546D",
	waveBlue1:    "#223249",
	winterBlue:   "#252535",
	winterYellow: "#49443C",
	winterRed:    "#43242B",
	fujiGray:     "#727169",
	fujiWhite:    "#DCD7BA",
	oniViolet:    "#957FB8",
	crystalBlue:  "#7E9CD8",
	springGreen:  "#98BB6C",
	carpYellow:   "#E6C384",
	waveRed:      "#E46876",
	waveAqua2:    "#7AA89F",
	dragonBlue:   "#658594",
	roninYellow:  "#FF9E3B",
	samuraiRed:   "#E82424",
	lightBlue:    "#A3D4D5",
}
