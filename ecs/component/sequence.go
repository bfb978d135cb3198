package component

// SequenceKind tells the state machine what to do once a sequence finishes.
type SequenceKind int

const (
	SequenceDeath SequenceKind = iota + 1
	SequenceGoal
)

// Sequence is a scripted, frame-timed move-and-scale of an entity's
// transform. It always runs to completion.
type Sequence struct {
	Kind      SequenceKind
	Frames    int
	Elapsed   int
	FromX     float64
	FromY     float64
	ToX       float64
	ToY       float64
	FromScale float64
	ToScale   float64
	Done      bool
}

var SequenceComponent = NewComponent[Sequence]()
