package board

import (
	"math/rand"

	bb "chess-movegen/bitboard"
	mg "chess-movegen/movegen"
)

// Zobrist keys. Piece keys are indexed by the packed piece code, so only
// the twelve real pieces get non-zero entries.
var (
	zobristPiece     [15][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

// zobristSeed keeps hashes stable across runs and test binaries.
const zobristSeed = 0xC0DE

func init() {
	rnd := rand.New(rand.NewSource(zobristSeed))
	for _, c := range []mg.Color{mg.White, mg.Black} {
		for t := mg.PieceTypePawn; t <= mg.PieceTypeKing; t++ {
			p := mg.NewPiece(c, t)
			for sq := range zobristPiece[p] {
				zobristPiece[p][sq] = rnd.Uint64()
			}
		}
	}
	// One key per right; a rights set hashes as the XOR of its members.
	var rights [4]uint64
	for i := range rights {
		rights[i] = rnd.Uint64()
	}
	for cr := range zobristCastle {
		for i, k := range rights {
			if cr&(1<<i) != 0 {
				zobristCastle[cr] ^= k
			}
		}
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// enPassantKey returns the key of the current en passant file, or 0.
func (b *Board) enPassantKey() uint64 {
	ep := b.EnPassantSquare()
	if ep == bb.NoSquare {
		return 0
	}
	return zobristEnPassant[ep.File()]
}

// ComputeZobrist calculates the Zobrist hash for the current board state from scratch.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq := bb.Square(0); sq < 64; sq++ {
		if p := b.pieces[sq]; p != mg.NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.sideToMove == mg.Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castlingRights]
	key ^= b.enPassantKey()
	return key
}
