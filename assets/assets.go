package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"path"
	"sort"

	"github.com/automoto/unexplored/logger"
	"github.com/automoto/unexplored/rig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"go.uber.org/zap"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Rect is an axis-aligned box in world pixels, y down.
type Rect struct {
	X, Y, Width, Height float64
}

type PlayerSpawn struct {
	X, Y  float64 // feet position
	Found bool
}

type CoinSpawn struct {
	Rect
	Points int
}

type DestructibleSpawn struct {
	Rect
	HP        int
	Explosive bool
}

type CheckpointSpawn struct {
	Rect
	CheckpointID int
}

type HintSpawn struct {
	Rect
	Text string
}

type Level struct {
	Background    *ebiten.Image
	SolidTiles    []Rect
	Ladders       []Rect
	Coins         []CoinSpawn
	Destructibles []DestructibleSpawn
	Goals         []Rect
	Checkpoints   []CheckpointSpawn
	Hints         []HintSpawn
	Spawn         PlayerSpawn
	Name          string
	Title         string
	Width         int
	Height        int
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			levels = append(levels, l.MustLoadLevel(path.Join("levels", entry.Name())))
		}
	}
	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}
	return levels
}

// LevelPaths lists the embedded level files in name order.
func LevelPaths() ([]string, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".tmx" {
			out = append(out, path.Join("levels", e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	levelMap, err := loadMap(levelPath)
	if err != nil {
		panic(err)
	}
	level := parseLevel(levelMap, levelPath)
	level.Background = renderBackground(levelMap)
	logger.Log.Info("level loaded",
		zap.String("level", levelPath),
		zap.Int("solids", len(level.SolidTiles)),
		zap.Int("coins", len(level.Coins)),
		zap.Int("destructibles", len(level.Destructibles)))
	return level
}

func loadMap(levelPath string) (*tiled.Map, error) {
	m, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}
	return m, nil
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// parseLevel reads object groups and collision tiles. It touches no GPU state.
func parseLevel(levelMap *tiled.Map, levelPath string) Level {
	level := Level{
		Name:   levelPath,
		Title:  levelMap.Properties.GetString("name"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.Spawn = PlayerSpawn{X: o.X, Y: o.Y, Found: true}
			}
		case "Walls":
			for _, o := range og.Objects {
				level.SolidTiles = append(level.SolidTiles, objectRect(o))
			}
		case "Ladders":
			for _, o := range og.Objects {
				level.Ladders = append(level.Ladders, objectRect(o))
			}
		case "Coins":
			for _, o := range og.Objects {
				points := o.Properties.GetInt("points")
				if points == 0 {
					points = 1
				}
				level.Coins = append(level.Coins, CoinSpawn{Rect: objectRect(o), Points: points})
			}
		case "Destructibles":
			for _, o := range og.Objects {
				hp := o.Properties.GetInt("hp")
				if hp <= 0 {
					hp = 1
				}
				explosive := true
				if len(o.Properties.Get("explosive")) > 0 {
					explosive = o.Properties.GetBool("explosive")
				}
				level.Destructibles = append(level.Destructibles, DestructibleSpawn{
					Rect:      objectRect(o),
					HP:        hp,
					Explosive: explosive,
				})
			}
		case "Goal":
			for _, o := range og.Objects {
				level.Goals = append(level.Goals, objectRect(o))
			}
		case "Checkpoints":
			for _, o := range og.Objects {
				level.Checkpoints = append(level.Checkpoints, CheckpointSpawn{
					Rect:         objectRect(o),
					CheckpointID: o.Properties.GetInt("checkpointID"),
				})
			}
			sort.Slice(level.Checkpoints, func(i, j int) bool {
				return level.Checkpoints[i].CheckpointID < level.Checkpoints[j].CheckpointID
			})
		case "Hints":
			for _, o := range og.Objects {
				level.Hints = append(level.Hints, HintSpawn{Rect: objectRect(o), Text: o.Properties.GetString("text")})
			}
		}
	}

	// Tile layers flagged with "collision" become solid tiles.
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("collision") {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				level.SolidTiles = append(level.SolidTiles, Rect{
					X:      float64(x) * tileW,
					Y:      float64(y) * tileH,
					Width:  tileW,
					Height: tileH,
				})
			}
		}
	}

	return level
}

// renderBackground flattens every tile and image layer with a "render" property.
func renderBackground(levelMap *tiled.Map) *ebiten.Image {
	bg := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)

	for _, imgLayer := range levelMap.ImageLayers {
		if !imgLayer.Properties.GetBool("render") || imgLayer.Image == nil || imgLayer.Opacity <= 0 {
			continue
		}
		img, err := decodeImage(assetFS, path.Join("levels", imgLayer.Image.Source))
		if err != nil {
			logger.Log.Warn("skipping image layer", zap.String("layer", imgLayer.Name), zap.Error(err))
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(imgLayer.OffsetX), float64(imgLayer.OffsetY))
		op.ColorScale.ScaleAlpha(float32(imgLayer.Opacity))
		bg.DrawImage(img, op)
		img.Deallocate()
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		panic(fmt.Sprintf("Failed to create renderer: %v", err))
	}
	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			logger.Log.Warn("skipping tile layer", zap.String("layer", layer.Name), zap.Error(err))
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return bg
}

func decodeImage(fs embed.FS, p string) (*ebiten.Image, error) {
	b, err := fs.ReadFile(p)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	return img, nil
}

// Mirror selects how the second image of a texture pair is derived.
type Mirror int

const (
	// MirrorHorizontal flips left to right, for body-facing pairs.
	MirrorHorizontal Mirror = iota
	// MirrorVertical flips top to bottom, for limbs rotated past 90 degrees.
	MirrorVertical
)

// ImageLoader caches decoded images, frames and their mirrored copies.
type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(p string) *ebiten.Image {
	img, err := l.LoadImage(p)
	if err != nil {
		panic(err)
	}
	return img
}

func (l *ImageLoader) LoadImage(p string) (*ebiten.Image, error) {
	if img, ok := l.cache[p]; ok {
		return img, nil
	}
	img, err := decodeImage(imageFS, path.Join("images", p))
	if err != nil {
		return nil, fmt.Errorf("%w: image %s: %v", rig.ErrAssetMissing, p, err)
	}
	l.cache[p] = img
	return img, nil
}

// Frame returns a cached sub-image of a sheet.
func (l *ImageLoader) Frame(p string, r image.Rectangle) (*ebiten.Image, error) {
	key := fmt.Sprintf("%s@%v", p, r)
	if img, ok := l.frameCache[key]; ok {
		return img, nil
	}
	sheet, err := l.LoadImage(p)
	if err != nil {
		return nil, err
	}
	if !r.In(sheet.Bounds()) {
		return nil, fmt.Errorf("%w: %s has no frame at %v", rig.ErrAssetMissing, p, r)
	}
	frame := sheet.SubImage(r).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame, nil
}

// Frames cuts n frames of w x h from one sheet row.
func (l *ImageLoader) Frames(p string, w, h, row, n int) ([]*ebiten.Image, error) {
	out := make([]*ebiten.Image, n)
	for i := range out {
		f, err := l.Frame(p, image.Rect(i*w, row*h, (i+1)*w, (row+1)*h))
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// TexturePair returns (right, left) for a single image. The left variant is a
// mirrored copy made once at load time.
func (l *ImageLoader) TexturePair(p string, m Mirror) (rig.TexturePair[*ebiten.Image], error) {
	img, err := l.LoadImage(p)
	if err != nil {
		return rig.TexturePair[*ebiten.Image]{}, err
	}
	return rig.TexturePair[*ebiten.Image]{img, mirrored(img, m)}, nil
}

// Strip returns texture pairs for n frames of one sheet row.
func (l *ImageLoader) Strip(p string, w, h, row, n int, m Mirror) ([]rig.TexturePair[*ebiten.Image], error) {
	frames, err := l.Frames(p, w, h, row, n)
	if err != nil {
		return nil, err
	}
	out := make([]rig.TexturePair[*ebiten.Image], n)
	for i, f := range frames {
		out[i] = rig.TexturePair[*ebiten.Image]{f, mirrored(f, m)}
	}
	return out, nil
}

func mirrored(src *ebiten.Image, m Mirror) *ebiten.Image {
	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	dst := ebiten.NewImage(b.Dx(), b.Dy())
	op := &ebiten.DrawImageOptions{}
	switch m {
	case MirrorHorizontal:
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	case MirrorVertical:
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, h)
	}
	dst.DrawImage(src, op)
	return dst
}

var images = NewImageLoader()

// Images is the shared loader for embedded sprites.
func Images() *ImageLoader {
	return images
}

func GetObjectImage(name string) *ebiten.Image {
	return images.MustLoadImage(path.Join("objects", name))
}

// MustFrames cuts a single-row strip from the shared loader.
func MustFrames(p string, w, h, n int) []*ebiten.Image {
	frames, err := images.Frames(p, w, h, 0, n)
	if err != nil {
		panic(err)
	}
	return frames
}
