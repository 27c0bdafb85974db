package main

import (
	"encoding/json"
	"fmt"
	"image/color"
)

type ColorTableIndex int

const (
	ColorBg ColorTableIndex = iota

	ColorVertex1
	ColorVertex2
	ColorVertex3

	ColorConsoleBg
	ColorConsoleBorder
	ColorConsoleText

	ColorOverlayBg
	ColorOverlayText

	ColorTableSize
)

var colorTableIndexNames = [ColorTableSize]string{
	ColorBg: "Bg",

	ColorVertex1: "Vertex1",
	ColorVertex2: "Vertex2",
	ColorVertex3: "Vertex3",

	ColorConsoleBg:     "ConsoleBg",
	ColorConsoleBorder: "ConsoleBorder",
	ColorConsoleText:   "ConsoleText",

	ColorOverlayBg:   "OverlayBg",
	ColorOverlayText: "OverlayText",
}

func (i ColorTableIndex) String() string {
	if i < 0 || i >= ColorTableSize {
		return "invalid"
	}
	return colorTableIndexNames[i]
}

var ColorTable [ColorTableSize]color.NRGBA

func init() {
	// the 0.14 gray clear color everything else sits on
	ColorTable[ColorBg] = color.NRGBA{36, 36, 36, 255}

	ColorTable[ColorVertex1] = color.NRGBA{255, 80, 80, 255}
	ColorTable[ColorVertex2] = color.NRGBA{80, 255, 80, 255}
	ColorTable[ColorVertex3] = color.NRGBA{80, 80, 255, 255}

	ColorTable[ColorConsoleBg] = color.NRGBA{0, 0, 0, 220}
	ColorTable[ColorConsoleBorder] = color.NRGBA{150, 150, 150, 255}
	ColorTable[ColorConsoleText] = color.NRGBA{230, 230, 230, 255}

	ColorTable[ColorOverlayBg] = color.NRGBA{0, 0, 0, 255}
	ColorTable[ColorOverlayText] = color.NRGBA{255, 255, 255, 255}
}

// ColorTableToJson serializes the table as css color strings so the
// asset stays hand-editable.
func ColorTableToJson(table [ColorTableSize]color.NRGBA) ([]byte, error) {
	tableMap := make(map[string]string)

	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		tableMap[i.String()] = ColorToString(table[i])
	}

	jsonBytes, err := json.MarshalIndent(tableMap, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

// ColorTableFromJson accepts anything csscolorparser accepts
// ("#RRGGBBAA", "rgb(…)", named colors). Unknown keys are ignored,
// missing keys keep their current value.
func ColorTableFromJson(tableJson []byte) ([ColorTableSize]color.NRGBA, error) {
	colorTable := ColorTable

	var tableMap map[string]string

	err := json.Unmarshal(tableJson, &tableMap)
	if err != nil {
		return colorTable, err
	}

	stringToIndex := make(map[string]int)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		stringToIndex[i.String()] = int(i)
	}

	for k, v := range tableMap {
		index, ok := stringToIndex[k]
		if !ok {
			continue
		}

		clr, err := ParseColorString(v)
		if err != nil {
			return colorTable, fmt.Errorf("color %q: %w", k, err)
		}

		colorTable[index] = clr
	}

	return colorTable, nil
}
