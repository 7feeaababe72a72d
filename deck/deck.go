package deck

import (
	"math/rand"
)

// Source is a validated base card set. Rooms share one Source but draw from
// their own Piles; the Source itself is never consumed.
type Source struct {
	Prompts   []PromptCard
	Responses []string
}

// Piles holds one room's live draw piles. Not safe for concurrent use; the
// owning room serializes access.
type Piles struct {
	src           *Source
	rng           *rand.Rand
	responses     []string
	prompts       []PromptCard
	promptDiscard []PromptCard
}

func NewPiles(src *Source, rng *rand.Rand) *Piles {
	p := &Piles{src: src, rng: rng}
	p.Reset()
	return p
}

// Reset rebuilds both draw piles as fresh permutations of the base sets and
// empties the discard pile. Used at room creation and game restart.
func (p *Piles) Reset() {
	p.responses = shuffled(p.rng, p.src.Responses)
	p.prompts = shuffled(p.rng, p.src.Prompts)
	p.promptDiscard = nil
}

// DrawResponses removes and returns n response cards. The pile is refilled by
// reshuffling the base set whenever it runs dry, so the draw never fails.
func (p *Piles) DrawResponses(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if len(p.responses) == 0 {
			p.responses = shuffled(p.rng, p.src.Responses)
		}
		last := len(p.responses) - 1
		out = append(out, p.responses[last])
		p.responses = p.responses[:last]
	}
	return out
}

// DrawPrompt removes and returns one prompt card, moving it to the discard
// pile. An exhausted draw pile is rebuilt from the discards, or from the base
// set if nothing has been discarded yet.
func (p *Piles) DrawPrompt() PromptCard {
	if len(p.prompts) == 0 {
		if len(p.promptDiscard) > 0 {
			p.prompts = shuffled(p.rng, p.promptDiscard)
			p.promptDiscard = nil
		} else {
			p.prompts = shuffled(p.rng, p.src.Prompts)
		}
	}
	last := len(p.prompts) - 1
	card := p.prompts[last]
	p.prompts = p.prompts[:last]
	p.promptDiscard = append(p.promptDiscard, card)
	return card
}

// shuffled returns a uniform permutation of src, leaving src untouched.
func shuffled[T any](rng *rand.Rand, src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
