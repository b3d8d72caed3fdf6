package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/kian-mehta/ExtendedEssay/maze"
	"github.com/yalue/image_utils"
)

const arrowLength = 16

// The border added around decorated mazes. Wide enough to hold an arrow
// outside of the maze on every side.
const decorationBorder = arrowLength + 2

// Directions an arrow can point in, matching the order of cell walls.
const (
	arrowLeft = iota
	arrowUp
	arrowRight
	arrowDown
)

var (
	entranceArrowColor = color.RGBA{40, 180, 70, 255}
	exitArrowColor     = color.RGBA{100, 120, 255, 255}
)

func getArrowForDir(dir int, arrowColor color.Color) image.Image {
	switch dir {
	case arrowUp:
		return image_utils.UpArrow(arrowColor)
	case arrowLeft:
		return image_utils.LeftArrow(arrowColor)
	case arrowDown:
		return image_utils.DownArrow(arrowColor)
	}
	return image_utils.RightArrow(arrowColor)
}

// Returns an arrow pointing in the given direction, with a white center.
func getOutlinedArrow(dir int, arrowColor color.Color) image.Image {
	outerArrow := image_utils.ResizeImage(getArrowForDir(dir, arrowColor),
		arrowLength, arrowLength)
	innerArrow := image_utils.ResizeImage(getArrowForDir(dir, color.White),
		arrowLength/2, arrowLength/2)
	toReturn := image_utils.NewCompositeImage()
	toReturn.AddImage(outerArrow, image.Pt(0, 0))
	toReturn.AddImage(innerArrow, image.Pt(arrowLength/4, arrowLength/4))
	return image_utils.ToRGBA(toReturn)
}

// If the tip of the arrow is supposed to be at the given pt (or the tail of
// the arrow, if "away" is true), this returns the top-left where the square
// image returned by getOutlinedArrow should be drawn.
func getArrowTopLeft(pt image.Point, dir int, away bool) image.Point {
	halfLength := arrowLength / 2
	switch dir {
	case arrowLeft:
		if away {
			return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
		}
		return image.Pt(pt.X+1, pt.Y-halfLength)
	case arrowUp:
		if away {
			return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
		}
		return image.Pt(pt.X-halfLength, pt.Y+1)
	case arrowRight:
		if away {
			return image.Pt(pt.X+1, pt.Y-halfLength)
		}
		return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
	case arrowDown:
		if away {
			return image.Pt(pt.X-halfLength, pt.Y+1)
		}
		return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
	}
	panic("Invalid arrow direction!")
}

// Adds "decorations" to the maze: a white border, an arrow pointing into the
// entrance and an arrow pointing out of the exit. Rasterizes the maze to an
// image.RGBA.
func Decorate(m *Image) (*image.RGBA, error) {
	decorated := image_utils.NewCompositeImage()
	mazePic := image_utils.ToRGBA(image_utils.AddImageBorder(m, color.White,
		decorationBorder))
	e := decorated.AddImage(mazePic, image.Pt(0, 0))
	if e != nil {
		return nil, fmt.Errorf("Error setting base maze image: %w", e)
	}
	offset := image.Pt(decorationBorder, decorationBorder)
	entrance := m.sideMidpoint(maze.Coord{}, arrowUp).Add(offset)
	exitCell := maze.Coord{X: m.width - 1, Y: m.height - 1}
	exit := m.sideMidpoint(exitCell, arrowDown).Add(offset)

	startArrow := getOutlinedArrow(arrowDown, entranceArrowColor)
	e = decorated.AddImage(startArrow, getArrowTopLeft(entrance, arrowDown,
		false))
	if e != nil {
		return nil, fmt.Errorf("Error adding start arrow: %w", e)
	}
	endArrow := getOutlinedArrow(arrowDown, exitArrowColor)
	e = decorated.AddImage(endArrow, getArrowTopLeft(exit, arrowDown, true))
	if e != nil {
		return nil, fmt.Errorf("Error adding end arrow: %w", e)
	}
	return image_utils.ToRGBA(decorated), nil
}

// Encodes the picture as a PNG.
func WritePNG(w io.Writer, pic image.Image) error {
	e := png.Encode(w, pic)
	if e != nil {
		return fmt.Errorf("Error encoding PNG: %w", e)
	}
	return nil
}
