package host

import (
	"errors"
	"fmt"

	"github.com/df-mc/dragonfly/server/player/skin"
	"github.com/oriumgames/npc"
)

// errSkinSize is returned for skins whose pixel data does not match their
// dimensions.
var errSkinSize = errors.New("host: skin data does not match its dimensions")

// encodeSkin captures a player skin for persistence.
func encodeSkin(s skin.Skin) npc.SkinData {
	b := s.Bounds()
	return npc.SkinData{
		Width:     b.Dx(),
		Height:    b.Dy(),
		Pix:       append([]byte(nil), s.Pix...),
		Model:     append([]byte(nil), s.Model...),
		ModelName: s.ModelConfig.Default,
	}
}

// decodeSkin rebuilds a player skin. An empty capture yields a blank 64x64
// skin.
func decodeSkin(d npc.SkinData) (skin.Skin, error) {
	if d.Empty() {
		return skin.New(64, 64), nil
	}
	if d.Width <= 0 || d.Height <= 0 || len(d.Pix) != d.Width*d.Height*4 {
		return skin.Skin{}, fmt.Errorf("%w: %dx%d with %d bytes", errSkinSize, d.Width, d.Height, len(d.Pix))
	}
	s := skin.New(d.Width, d.Height)
	copy(s.Pix, d.Pix)
	s.Model = append([]byte(nil), d.Model...)
	s.ModelConfig.Default = d.ModelName
	return s, nil
}
