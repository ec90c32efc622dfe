package render

import "github.com/tomz197/vectoroids/internal/physics"

// Seven-segment corners in a unit box centered on the origin.
var (
	segTL = physics.Vec2{X: -0.25, Y: -0.5}
	segTR = physics.Vec2{X: 0.25, Y: -0.5}
	segML = physics.Vec2{X: -0.25, Y: 0}
	segMR = physics.Vec2{X: 0.25, Y: 0}
	segBL = physics.Vec2{X: -0.25, Y: 0.5}
	segBR = physics.Vec2{X: 0.25, Y: 0.5}
)

// digitGlyphs holds the strokes of each decimal digit.
var digitGlyphs = [10][][]physics.Vec2{
	0: {{segTL, segTR, segBR, segBL, segTL}},
	1: {{segTR, segBR}},
	2: {{segTL, segTR, segMR, segML, segBL, segBR}},
	3: {{segTL, segTR, segBR, segBL}, {segML, segMR}},
	4: {{segTL, segML, segMR}, {segTR, segBR}},
	5: {{segTR, segTL, segML, segMR, segBR, segBL}},
	6: {{segTR, segTL, segBL, segBR, segMR, segML}},
	7: {{segTL, segTR, segBR}},
	8: {{segTL, segTR, segBR, segBL, segTL}, {segML, segMR}},
	9: {{segMR, segML, segTL, segTR, segBR, segBL}},
}
