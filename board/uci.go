package board

import (
	"errors"
	"fmt"
	"strings"

	bb "chess-movegen/bitboard"
	mg "chess-movegen/movegen"
)

var (
	// ErrInvalidMove is returned for text that is not a UCI move.
	ErrInvalidMove = errors.New("invalid move")
	// ErrIllegalMove is returned for a well-formed move that is not legal here.
	ErrIllegalMove = errors.New("illegal move")
)

// ParseMove converts a UCI string (e2e4, e7e8q) into the matching legal move
// of the current position. A side to move without a king yields an error
// wrapping movegen.ErrMissingKing.
func (b *Board) ParseMove(movestr string) (mg.Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return 0, fmt.Errorf("%w %q: bad length", ErrInvalidMove, movestr)
	}
	from, err := bb.ParseSquare(movestr[0:2])
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidMove, movestr, err)
	}
	to, err := bb.ParseSquare(movestr[2:4])
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidMove, movestr, err)
	}
	promo := mg.PieceTypeNone
	if len(movestr) == 5 {
		promo = mg.PieceFromSymbol(rune(movestr[4])).Type()
		if promo == mg.PieceTypeNone || promo == mg.PieceTypePawn || promo == mg.PieceTypeKing {
			return 0, fmt.Errorf("%w %q: invalid promotion piece", ErrInvalidMove, movestr)
		}
	}
	res, err := b.Analyze()
	if err != nil {
		return 0, fmt.Errorf("parse move %s: %w", movestr, err)
	}
	for _, m := range res.Moves {
		if m.From() == from && m.To() == to && m.Promotion() == promo {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w %s in %s", ErrIllegalMove, movestr, b.ToFEN())
}

// PlayMoves parses and makes each UCI move in turn.
func (b *Board) PlayMoves(moves ...string) error {
	for _, s := range moves {
		m, err := b.ParseMove(s)
		if err != nil {
			return err
		}
		b.MakeMove(m)
	}
	return nil
}
