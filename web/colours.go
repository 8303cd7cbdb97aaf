// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

// PartyColours maps the party names used in the source data to their
// conventional display colours. Anything missing renders grey.
var PartyColours = map[string]string{
	"Con":   "#0087DC",
	"Lab":   "#DC241F",
	"LD":    "#FAA61A",
	"Lib":   "#FAA61A",
	"SDP":   "#7B68EE",
	"SNP":   "#FDF38E",
	"PC":    "#005B54",
	"Green": "#528D6B",
	"UKIP":  "#70147A",
	"BRX":   "#12B6CF",
	"DUP":   "#D46A4C",
	"SF":    "#326760",
	"SDLP":  "#2AA82C",
	"UUP":   "#48A5EE",
	"APNI":  "#F6CB2F",
	"Other": "#808080",
}

// defaultColour is used for parties without an assigned colour.
const defaultColour = "#808080"

// Colour returns the display colour for a party.
func Colour(party string) string {
	if c, ok := PartyColours[party]; ok {
		return c
	}
	return defaultColour
}
