package board

import (
	"github.com/rs/zerolog/log"

	"goban/geom"
)

func (p *Point) equals(p2 *Point) bool {
	if p.color != p2.color {
		log.Debug().Msgf("colors not equal: %v %v", p.color, p2.color)
		return false
	}
	if p.parent != p2.parent {
		log.Debug().Msgf("parents not equal: %v %v", p.parent, p2.parent)
		return false
	}
	if p.liberties != p2.liberties {
		log.Debug().Msgf("liberties not equal: %v %v", p.liberties, p2.liberties)
		return false
	}
	if p.nbrSum != p2.nbrSum {
		log.Debug().Msgf("neighbor sums not equal: %v %v", p.nbrSum, p2.nbrSum)
		return false
	}
	if p.nbrSumSq != p2.nbrSumSq {
		log.Debug().Msgf("neighbor sums of squares not equal: %v %v", p.nbrSumSq, p2.nbrSumSq)
		return false
	}
	if p.whiteNbrs != p2.whiteNbrs {
		log.Debug().Msgf("white neighbor counts not equal: %v %v", p.whiteNbrs, p2.whiteNbrs)
		return false
	}
	if p.blackNbrs != p2.blackNbrs {
		log.Debug().Msgf("black neighbor counts not equal: %v %v", p.blackNbrs, p2.blackNbrs)
		return false
	}
	return true
}

// Equals checks the boards for structural equality: dimension, every
// point record, the empty set, and scores. Hash values are not compared;
// two fresh boards of one dimension are equal even though their zobrist
// tables differ.
func (b *Board) Equals(b2 *Board) bool {
	if b.dim != b2.dim {
		log.Debug().Msgf("dims don't match: %v %v", b.dim, b2.dim)
		return false
	}
	if b.whiteScore != b2.whiteScore || b.blackScore != b2.blackScore {
		log.Debug().Msgf("scores don't match: %v/%v %v/%v",
			b.whiteScore, b.blackScore, b2.whiteScore, b2.blackScore)
		return false
	}
	if len(b.empty) != len(b2.empty) {
		log.Debug().Msgf("empty sets don't match: %v %v", len(b.empty), len(b2.empty))
		return false
	}
	for k := range b.empty {
		if _, ok := b2.empty[k]; !ok {
			log.Debug().Msgf("empty set mismatch at %s", geom.Label(k, b.dim))
			return false
		}
	}
	for i := range b.positions {
		if !b.positions[i].equals(&b2.positions[i]) {
			log.Debug().Msgf("> not equal at %s", geom.Label(i, b.dim))
			return false
		}
	}
	return true
}
