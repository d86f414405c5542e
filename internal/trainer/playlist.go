package trainer

import "github.com/SeamusWaldron/cubetrainer/internal/config"

// shuffled returns a permutation of 0..n-1 drawn with Fisher-Yates.
func shuffled(n int, rnd Rand) []int {
	deck := make([]int, n)
	for i := range deck {
		deck[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

// dealAfter returns a deck that opens with current followed by every other
// index in shuffled order.
func dealAfter(current, n int, rnd Rand) []int {
	deck := make([]int, 0, n)
	deck = append(deck, current)
	rest := shuffled(n-1, rnd)
	for _, i := range rest {
		if i >= current {
			i++
		}
		deck = append(deck, i)
	}
	return deck
}

// first picks the opening case of a session.
func first(s State, rnd Rand) (State, int) {
	n := s.Set.Len()
	switch s.Settings.PlaylistMode {
	case config.PlaylistShuffle:
		s.deck = shuffled(n, rnd)
		s.deckPos = 0
		return s, s.deck[0]
	case config.PlaylistRandom:
		return s, rnd.IntN(n)
	default:
		return s, 0
	}
}

// next picks the case after the current one. ok is false when the playlist
// is exhausted and does not loop.
func next(s State, rnd Rand) (State, int, bool) {
	n := s.Set.Len()
	if s.Settings.LoopMode == config.LoopOne {
		return s, s.Index, true
	}
	loop := s.Settings.LoopMode != config.LoopNone

	switch s.Settings.PlaylistMode {
	case config.PlaylistShuffle:
		// A case picked outside the deck starts a new one so it cannot come
		// straight back.
		if len(s.deck) != n || s.deck[s.deckPos] != s.Index {
			s.deck, s.deckPos = dealAfter(s.Index, n, rnd), 0
		}
		if s.deckPos+1 >= n {
			if !loop {
				return s, 0, false
			}
			s.deck, s.deckPos = dealAfter(s.Index, n, rnd), 0
			if n == 1 {
				return s, s.Index, true
			}
		}
		s.deckPos++
		return s, s.deck[s.deckPos], true
	case config.PlaylistRandom:
		return s, rnd.IntN(n), true
	default:
		if s.Index+1 >= n && !loop {
			return s, 0, false
		}
		return s, (s.Index + 1) % n, true
	}
}
