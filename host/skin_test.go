package host

import (
	"bytes"
	"errors"
	"testing"

	"github.com/oriumgames/npc"
)

func TestSkinRoundTrip(t *testing.T) {
	t.Parallel()

	in := npc.SkinData{
		Width:     64,
		Height:    32,
		Pix:       bytes.Repeat([]byte{1, 2, 3, 4}, 64*32),
		Model:     []byte(`{"geometry":{}}`),
		ModelName: "geometry.humanoid.custom",
	}
	sk, err := decodeSkin(in)
	if err != nil {
		t.Fatalf("decodeSkin: %v", err)
	}
	out := encodeSkin(sk)
	if out.Width != in.Width || out.Height != in.Height {
		t.Fatalf("size = %dx%d, want %dx%d", out.Width, out.Height, in.Width, in.Height)
	}
	if !bytes.Equal(out.Pix, in.Pix) {
		t.Fatal("pixels differ after round trip")
	}
	if !bytes.Equal(out.Model, in.Model) || out.ModelName != in.ModelName {
		t.Fatalf("model = %q/%q, want %q/%q", out.Model, out.ModelName, in.Model, in.ModelName)
	}
}

func TestDecodeSkinEmpty(t *testing.T) {
	t.Parallel()

	sk, err := decodeSkin(npc.SkinData{})
	if err != nil {
		t.Fatalf("decodeSkin: %v", err)
	}
	if b := sk.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("blank skin size = %dx%d, want 64x64", b.Dx(), b.Dy())
	}
}

func TestDecodeSkinSizeMismatch(t *testing.T) {
	t.Parallel()

	_, err := decodeSkin(npc.SkinData{Width: 64, Height: 64, Pix: make([]byte, 10)})
	if !errors.Is(err, errSkinSize) {
		t.Fatalf("err = %v, want errSkinSize", err)
	}
}
