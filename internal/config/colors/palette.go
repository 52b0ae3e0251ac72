package colors

// palette holds the Kanagawa colors used by the wave, dragon and lotus presets
var palette = struct {
	sumiInk3, sumiInk4, sumiInk6                  string
	waveBlue1, waveAqua2                          string
	winterBlue, winterYellow, winterRed           string
	samuraiRed, roninYellow, dragonBlue           string
	fujiWhite, fujiGray                           string
	oniViolet, crystalBlue, springGreen, peachRed string

	dragonBlack3, dragonBlack4, dragonBlack6 string
	dragonWhite, dragonGreen2, dragonBlue2   string
	dragonViolet, dragonRed, dragonAqua      string
	dragonAsh                                string

	lotusInk1, lotusWhite3, lotusWhite4    string
	lotusViolet1, lotusViolet4             string
	lotusBlue1, lotusBlue2, lotusBlue4     string
	lotusGreen, lotusRed, lotusRed3        string
	lotusRed4, lotusAqua, lotusTeal3       string
	lotusGray3, lotusOrange2, lotusYellow4 string
}{
	sumiInk3:     "#1F1F28",
	sumiInk4:     "#2A2A37",
	sumiInk6:     "#54546D",
	waveBlue1:    "#223249",
	waveAqua2:    "#7AA89F",
	winterBlue:   "#252535",
	winterYellow: "#49443C",
	winterRed:    "#43242B",
	samuraiRed:   "#E82424",
	roninYellow:  "#FF9E3B",
	dragonBlue:   "#658594",
	fujiWhite:    "#DCD7BA",
	fujiGray:     "#727169",
	oniViolet:    "#957FB8",
	crystalBlue:  "#7E9CD8",
	springGreen:  "#98BB6C",
	peachRed:     "#FF5D62",

	dragonBlack3: "#181616",
	dragonBlack4: "#282727",
	dragonBlack6: "#625E5A",
	dragonWhite:  "#C5C9C5",
	dragonGreen2: "#8A9A7B",
	dragonBlue2:  "#8BA4B0",
	dragonViolet: "#8992A7",
	dragonRed:    "#C4746E",
	dragonAqua:   "#8EA4A2",
	dragonAsh:    "#737C73",

	lotusInk1:    "#545464",
	lotusWhite3:  "#F2ECBC",
	lotusWhite4:  "#E7DBA0",
	lotusViolet1: "#A09CAC",
	lotusViolet4: "#624C83",
	lotusBlue1:   "#C7D7E0",
	lotusBlue2:   "#B5CBD2",
	lotusBlue4:   "#4D699B",
	lotusGreen:   "#6F894E",
	lotusRed:     "#C84053",
	lotusRed3:    "#D7474B",
	lotusRed4:    "#D9A594",
	lotusAqua:    "#597B75",
	lotusTeal3:   "#5A7785",
	lotusGray3:   "#8A8980",
	lotusOrange2: "#E98A00",
	lotusYellow4: "#F9D791",
}
