package render

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type faces struct {
	title font.Face
	cell  font.Face
}

func (f faces) Close() error {
	var errs []error
	for _, face := range []font.Face{f.title, f.cell} {
		if face != nil {
			errs = append(errs, face.Close())
		}
	}
	return errors.Join(errs...)
}

func loadFaces(opts Options) (faces, error) {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return faces{}, fmt.Errorf("render: parse bold font: %w", err)
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return faces{}, fmt.Errorf("render: parse regular font: %w", err)
	}
	title, err := opentype.NewFace(bold, &opentype.FaceOptions{Size: opts.TitleSize, DPI: opts.DPI, Hinting: font.HintingFull})
	if err != nil {
		return faces{}, fmt.Errorf("render: title face: %w", err)
	}
	cell, err := opentype.NewFace(regular, &opentype.FaceOptions{Size: opts.CellSize, DPI: opts.DPI, Hinting: font.HintingFull})
	if err != nil {
		_ = title.Close()
		return faces{}, fmt.Errorf("render: cell face: %w", err)
	}
	return faces{title: title, cell: cell}, nil
}
