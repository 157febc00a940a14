package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	bb "chess-movegen/bitboard"
	mg "chess-movegen/movegen"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every FEN parsing error.
var ErrInvalidFEN = errors.New("invalid FEN")

func fenError(msg string) error { return fmt.Errorf("%w: %s", ErrInvalidFEN, msg) }

// ParseFEN parses a FEN string and returns a new Board set up to that position.
// An en passant field is turned into the double pawn push that produced it,
// so that it shows up as the board's last move.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fenError("not enough fields")
	}

	b := &Board{fullmoveNumber: 1}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenError("incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, fenError("empty rank description")
		}
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := mg.PieceFromSymbol(ch)
			if p == mg.NoPiece {
				return nil, fenError(fmt.Sprintf("unrecognized piece character %q", ch))
			}
			if file >= 8 {
				return nil, fenError("too many squares in rank")
			}
			b.addPiece(bb.NewSquare(file, rank), p)
			file++
		}
		if file != 8 {
			return nil, fenError("rank does not have 8 columns")
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		b.sideToMove = mg.White
	case "b":
		b.sideToMove = mg.Black
	default:
		return nil, fenError("side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castlingRights |= mg.CastlingWhiteK
			case 'Q':
				b.castlingRights |= mg.CastlingWhiteQ
			case 'k':
				b.castlingRights |= mg.CastlingBlackK
			case 'q':
				b.castlingRights |= mg.CastlingBlackQ
			default:
				return nil, fenError("invalid castling rights character")
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		ep, err := bb.ParseSquare(fields[3])
		if err != nil {
			return nil, fenError("invalid en passant square")
		}
		push, err := impliedDoublePush(b, ep)
		if err != nil {
			return nil, err
		}
		b.history = append(b.history, push)
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fenError("halfmove clock is not a number")
		}
		b.halfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fenError("fullmove number is not a number")
		}
		b.fullmoveNumber = fullmove
	}

	b.zobristKey = b.ComputeZobrist()
	return b, nil
}

// MustParseFEN is ParseFEN for constant inputs; it panics on error.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// impliedDoublePush reconstructs the move that left ep as the en passant
// target: a pawn of the side not to move jumping over it.
func impliedDoublePush(b *Board, ep bb.Square) (mg.Move, error) {
	mover := b.sideToMove.Other()
	var from, to bb.Square
	switch {
	case mover == mg.White && ep.Rank() == 2:
		from, to = ep-8, ep+8
	case mover == mg.Black && ep.Rank() == 5:
		from, to = ep+8, ep-8
	default:
		return 0, fenError("en passant square on wrong rank")
	}
	pawn := mg.NewPiece(mover, mg.PieceTypePawn)
	if b.pieces[to] != pawn || b.pieces[from] != mg.NoPiece || b.pieces[ep] != mg.NoPiece {
		return 0, fenError("en passant square without a pushed pawn")
	}
	return mg.NewMove(pawn, from, to, mg.SpecialNone), nil
}

// ToFEN produces the FEN string representation of the board's current state.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[bb.NewSquare(file, rank)]
			if p == mg.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(p.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if b.sideToMove == mg.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		for i, ch := range "KQkq" {
			if b.castlingRights&(1<<uint(i)) != 0 {
				sb.WriteRune(ch)
			}
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(b.EnPassantSquare().String())
	sb.WriteByte(' ')

	// 5. Halfmove clock
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')

	// 6. Fullmove number
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
