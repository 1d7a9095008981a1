package game

import "fmt"

// RenderHUD draws the score and, after game over, the result panel.
func RenderHUD(r *Renderer, session *GameSession, fbW, fbH int) {
	scale := float32(HUDScale) * session.ScoreScale()
	scoreStr := fmt.Sprintf("Score: %d", session.Score)
	r.DrawString(scoreStr, 18, 18, scale, Palette.Shadow, 0.6)
	r.DrawString(scoreStr, 16, 16, scale, Palette.Score, 1)

	if session.State == StateGameOver {
		drawGameOverModal(r, session, fbW, fbH)
	}
	r.FlushText(fbW, fbH)
}

// drawGameOverModal slides the panel down into the center while fading it in.
func drawGameOverModal(r *Renderer, session *GameSession, fbW, fbH int) {
	k := easeOut(session.ModalProgress())
	alpha := float32(k)
	offset := int((1 - k) * ModalSlide * float64(fbH))

	title := "GAME OVER"
	titleScale := float32(HUDScale * 1.6)
	result := fmt.Sprintf("Final score: %d", session.Score)
	hint := "Click or press SPACE to play again"
	hintScale := float32(HUDScale * 0.6)

	w := max(TextWidth(title, titleScale), TextWidth(result, HUDScale), TextWidth(hint, hintScale)) + 64
	h := int(float32(FontCellH)*(titleScale+HUDScale+hintScale)) + 96
	x := fbW/2 - w/2
	y := fbH/2 - h/2 - offset

	r.DrawRect(x, y, w, h, Palette.Panel, 0.85*alpha)

	ty := y + 24
	r.DrawString(title, fbW/2-TextWidth(title, titleScale)/2, ty, titleScale, Palette.PanelTitle, alpha)
	ty += int(float32(FontCellH)*titleScale) + 16
	r.DrawString(result, fbW/2-TextWidth(result, HUDScale)/2, ty, HUDScale, Palette.Text, alpha)
	ty += int(float32(FontCellH)*HUDScale) + 24
	r.DrawString(hint, fbW/2-TextWidth(hint, hintScale)/2, ty, hintScale, Palette.Hint, alpha)
}
