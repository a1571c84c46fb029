package fruits

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

// Minimum terminal size the game renders at.
const (
	MinScreenW = 40
	MinScreenH = 14
)

// HelpLine is shown on the bottom row while playing.
const HelpLine = "←/→ move  space slice  a boost  esc pause  q quit"

type sprite struct {
	body  string // Exactly three cells
	color core.Color
}

var sprites = [...]sprite{
	Apple:      {"(●)", core.ColorRed},
	Strawberry: {"<♦>", core.ColorBrightRed},
	Orange:     {"(◎)", core.ColorOrange},
	Watermelon: {"[≡]", core.ColorGreen},
	Pineapple:  {"{#}", core.ColorYellow},
	Banana:     {"(~)", core.ColorBrightYellow},
	Pome:       {"(♥)", core.ColorPink},
}

var stems = [...]rune{'|', '/', '─', '\\'}

var splashColors = [...]core.Color{
	SplashYellow: core.ColorYellow,
	SplashOrange: core.ColorOrange,
	SplashRed:    core.ColorRed,
}

// view projects world coordinates onto the play field rows of the screen.
type view struct {
	dst  *core.Screen
	top  int // First field row
	rows int
	cols int
}

func (v view) cell(p core.Vec) (int, int) {
	x := int(math.Round((p.X + WorldW/2) / WorldW * float64(v.cols-1)))
	y := v.top + int(math.Round((WorldH/2-p.Y)/WorldH*float64(v.rows-1)))
	return x, y
}

// put draws a rune clipped to the play field.
func (v view) put(x, y int, r rune, c core.Color) {
	if y < v.top || y >= v.top+v.rows {
		return
	}
	v.dst.SetColored(x, y, r, c)
}

// text draws a string centered on column cx, clipped to the play field.
func (v view) text(cx, y int, s string, c core.Color) {
	x := cx - utf8.RuneCountInString(s)/2
	for _, r := range s {
		v.put(x, y, r, c)
		x++
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}
	if g.ctx == nil {
		return
	}

	v := view{dst: dst, top: 1, rows: dst.Height() - 2, cols: dst.Width()}

	g.renderGround(v)
	g.renderFruit(v)
	g.renderChef(v)
	g.renderEffects(v)
	g.renderHUD(dst)
	dst.DrawTextCentered(dst.Height()-1, HelpLine, core.ColorGray)

	switch {
	case g.phase == PhaseEnded:
		g.renderGameOver(dst)
	case g.paused:
		drawPanel(dst, core.ColorCyan, []panelLine{
			{"PAUSED", core.ColorBrightCyan},
			{"", core.ColorDefault},
			{"esc or enter to resume", core.ColorGray},
		})
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.ctx.Session
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightYellow)
	dst.DrawTextColored(13+digits(s.Score), 0, fmt.Sprintf("Best: %d", g.best), core.ColorGray)

	hearts := strings.Repeat("♥", s.Lives) + strings.Repeat("♡", max(s.MaxLives-s.Lives, 0))
	dst.DrawTextCentered(0, hearts, core.ColorRed)

	right := fmt.Sprintf("Boost: %d  Level: %d", s.Boosts, s.Level)
	if n := g.boost.Remaining(); n > 0 {
		right = fmt.Sprintf("Boosting %d  ", n) + right
	}
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right)-1, 0, right, core.ColorBrightCyan)
}

func (g *Game) renderGround(v view) {
	_, y := v.cell(core.Vec{Y: g.cfg.Chef.Y - 40})
	for x := 0; x < v.cols; x++ {
		v.put(x, y, '─', core.ColorBrown)
	}
}

func (g *Game) renderFruit(v view) {
	for _, f := range g.ctx.Fruits {
		sp := sprites[f.Type]
		x, y := v.cell(f.Pos)

		if !f.Sliced {
			v.put(x, y-1, stem(f), core.ColorGreen)
			v.text(x, y, sp.body, sp.color)
			continue
		}

		body := []rune(sp.body)
		gap := 1 + int(f.SlicedFor/(150*time.Millisecond))
		if gap > 3 {
			gap = 3
		}
		v.put(x-gap-1, y, body[0], sp.color)
		v.put(x-gap, y, body[1], sp.color)
		v.put(x+gap, y, body[1], sp.color)
		v.put(x+gap+1, y, body[2], sp.color)
		if f.SlicedFor < SlashLifetime {
			v.put(x, y, '╱', core.ColorWhite)
		}
	}
}

func stem(f *Fruit) rune {
	if f.Type == Pineapple {
		return 'ψ'
	}
	i := int(math.Floor(f.Angle/45)) % len(stems)
	if i < 0 {
		i += len(stems)
	}
	return stems[i]
}

func (g *Game) renderChef(v view) {
	x, y := v.cell(g.chef.Pos)
	v.text(x, y-2, "▄█▄", core.ColorWhite)
	v.text(x, y-1, "(^_^)", core.ColorBrightYellow)
	v.text(x, y, "/|\\", core.ColorWhite)
	v.put(x+2*g.chef.Facing, y, '─', core.ColorGray)

	if g.effects.slashAge < SlashLifetime {
		sx, sy := v.cell(g.effects.slash)
		v.text(sx, sy-3, "⌒⌒⌒⌒⌒", core.ColorBrightCyan)
	}
}

func (g *Game) renderEffects(v view) {
	e := g.effects

	for _, s := range e.splashes {
		x, y := v.cell(s.pos)
		c := splashColors[s.color]
		if s.age < SplashLifetime/2 {
			v.put(x-1, y, '∙', c)
			v.put(x, y, '*', c)
			v.put(x+1, y, '∙', c)
		} else {
			v.put(x, y, '.', c)
		}
	}

	for _, w := range e.waves {
		x, y := v.cell(core.Vec{X: w.x, Y: -WorldH / 2})
		width := 1 + int(6*w.age/WaveLifetime)
		for dx := -width; dx <= width; dx++ {
			r := '~'
			if (dx+width)%2 == 1 {
				r = '^'
			}
			v.put(x+dx, y, r, core.ColorRed)
		}
	}

	for _, s := range e.shots {
		t := float64(s.age) / float64(ShotLifetime)
		x, y := v.cell(s.from.Lerp(s.to, t))
		v.put(x, y, '•', core.ColorBrightCyan)
	}

	for _, t := range e.texts {
		x, y := v.cell(t.pos)
		v.text(x, y-2, t.text, core.ColorBrightGreen)
	}

	for _, c := range e.confetti {
		x, y := v.cell(c.pos)
		v.put(x, y, c.glyph, c.color)
	}

	if e.bannerAge < BannerLifetime {
		v.text(v.cols/2, v.top+1, e.banner, core.ColorBrightYellow)
	}
}

func levelBanner(level int) string {
	return fmt.Sprintf("LEVEL %d", level)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	s := g.ctx.Session
	lines := []panelLine{
		{"GAME OVER", core.ColorBrightRed},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score: %d   Level: %d", s.Score, s.Level), core.ColorWhite},
		{fmt.Sprintf("Best: %d", max(g.best, bestIf(g.newRecord, s.Score))), core.ColorGray},
	}
	if g.newRecord {
		lines = append(lines, panelLine{"★ NEW RECORD! ★", core.ColorBrightYellow})
	}
	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"r or enter to play again, q to quit", core.ColorGray},
	)
	drawPanel(dst, core.ColorRed, lines)
}

func bestIf(ok bool, score int) int {
	if ok {
		return score
	}
	return 0
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a bordered box with centered lines in the middle of dst.
func drawPanel(dst *core.Screen, border core.Color, lines []panelLine) {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l.text))
	}
	w = min(w+6, dst.Width())
	h := min(len(lines)+2, dst.Height())
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, border)
	for i, l := range lines {
		x := r.X + (w-utf8.RuneCountInString(l.text))/2
		dst.DrawTextColored(x, r.Y+1+i, l.text, l.color)
	}
}

func digits(n int) int {
	return len(fmt.Sprint(n))
}
