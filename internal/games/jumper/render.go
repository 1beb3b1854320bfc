package jumper

import (
	"fmt"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Visual characters for rendering
const (
	platformChar = '▀'
	playerChar   = '█'
	particleChar = '·'
	rippleChar   = '◦'
	tokenBracket = "()"
)

// Render draws the current world state into the screen buffer. The world is
// projected from world units onto terminal cells; all gameplay logic stays in
// world units.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 1 {
		return
	}

	// Row 0 is the HUD; the world projects onto the remaining rows.
	worldRows := h - 1
	sx := func(wx float64) int { return int(wx * float64(w) / g.conf.World.Width) }
	sy := func(wy float64) int { return 1 + int(wy*float64(worldRows)/g.conf.World.Height) }

	for i := range g.platforms {
		g.drawPlatform(dst, &g.platforms[i], sx, sy)
	}

	for _, pt := range g.particles {
		dst.SetCell(sx(pt.X), sy(pt.Y), particleChar, core.ColorGray)
	}
	for _, rp := range g.ripples {
		x, y := sx(rp.X), sy(rp.Y)
		r := core.Max(1, sx(rp.Radius)-sx(0))
		dst.SetCell(x-r, y, rippleChar, core.ColorBrightCyan)
		dst.SetCell(x+r, y, rippleChar, core.ColorBrightCyan)
	}

	g.drawPlayer(dst, sx, sy)
	g.drawHUD(dst)

	switch g.phase {
	case PhaseReady:
		secs := float64(g.ReadyRemaining()) / 1e9
		g.drawCenteredMessage(dst, "GET READY", fmt.Sprintf("%.1f", secs))
	case PhaseEnded:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawPlatform renders a platform row plus its power-up token, if any.
func (g *Game) drawPlatform(dst *core.Screen, pl *Platform, sx, sy func(float64) int) {
	left := sx(pl.X)
	right := sx(pl.X + pl.W)
	if right <= left {
		right = left + 1
	}
	y := sy(pl.Y)
	color := TierAt(pl.Tier).Color

	for x := left; x < right; x++ {
		dst.SetCell(x, y, platformChar, color)
	}

	if pl.HasPower {
		cx := sx(pl.X + pl.W/2)
		ty := sy(pl.Y - g.conf.PowerUps.PickupSize)
		dst.SetCell(cx-1, ty, rune(tokenBracket[0]), core.ColorBrightWhite)
		dst.SetCell(cx, ty, pl.Power.Glyph(), core.ColorBrightYellow)
		dst.SetCell(cx+1, ty, rune(tokenBracket[1]), core.ColorBrightWhite)
	}
}

// drawPlayer renders the player box in the character's color.
func (g *Game) drawPlayer(dst *core.Screen, sx, sy func(float64) int) {
	p := &g.player
	left, right := sx(p.X), sx(p.X+p.W)
	top, bottom := sy(p.Y), sy(p.Y+p.H)
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			dst.SetCell(x, y, playerChar, g.char.Color)
		}
	}
	// Face glyph marks the center of the box.
	dst.SetCell((left+right)/2, (top+bottom)/2, g.char.Glyph, core.ColorBrightWhite)
}

// drawHUD renders the top status row: score, tier, shield, active power-ups.
func (g *Game) drawHUD(dst *core.Screen) {
	tier := TierFor(g.score)
	hud := fmt.Sprintf(" %s  Score: %d  [%s x%d]", g.char.Name, g.score, tier.Name, tier.Multiplier)
	dst.DrawTextColored(0, 0, hud, tier.Color)

	x := len(hud) + 2
	if g.player.Shield > 0 {
		dst.DrawTextColored(x, 0, "[Shield]", core.ColorBrightBlue)
		x += 10
	}
	for _, kind := range []PowerUpKind{PowerScoreX2, PowerGiant, PowerBooster} {
		if !g.powers.Active(kind) {
			continue
		}
		secs := float64(g.powers.Remaining(kind, g.clock)) / 1e9
		label := fmt.Sprintf("[%c %.0fs]", kind.Glyph(), secs)
		dst.DrawTextColored(x, 0, label, core.ColorBrightGreen)
		x += len(label) + 1
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
