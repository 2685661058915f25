// SPDX-License-Identifier: EPL-2.0

package mzf

import "github.com/ik5/tapepbx/tape"

// Pulse timings of the MZ-700/80K/80A tape recorders, in microseconds.
const (
	LongUp    tape.Period = 464
	LongDown  tape.Period = 494
	ShortUp   tape.Period = 240
	ShortDown tape.Period = 264
)

var (
	// Long encodes a one bit, the byte leader and the tapemark marks.
	Long = tape.Pulse{Up: LongUp, Down: LongDown}
	// Short encodes a zero bit and fills the gaps.
	Short = tape.Pulse{Up: ShortUp, Down: ShortDown}
)

// Gap and tapemark lengths in pulses.
const (
	LongGapPulses  = 22000
	ShortGapPulses = 11000

	leaderMarks  = 40
	trailerMarks = 20
)

// Stage is one phase of the tape layout.
type Stage uint8

const (
	StageLongGap Stage = iota
	StageLeaderLong
	StageLeaderShort
	StageLeaderEnd
	StageHeader1
	StageHeaderSum1
	StageHeader2
	StageHeaderSum2
	StageShortGap
	StageTrailerLong
	StageTrailerShort
	StageTrailerEnd
	StageFile1
	StageFileSum1
	// StageFile2 and StageFileSum2 carry the conventional second copy of
	// the file. Playback ends after StageFileSum1 so they are never entered.
	StageFile2
	StageFileSum2
	StageDone
)

type stageKind uint8

const (
	kindPulses stageKind = iota
	kindBytes
	kindTerminal
)

// byteSource selects where a byte stage loads its bytes from.
type byteSource uint8

const (
	srcNone byteSource = iota
	srcHeader
	srcHeaderSum
	srcFile
	srcFileSum
)

// stageSpec describes a stage. Pulse stages send count pulses of the given
// kind. Byte stages send count bytes from src; a count of zero means the
// length comes from the header size field.
type stageSpec struct {
	name  string
	kind  stageKind
	pulse tape.Pulse
	src   byteSource
	count int
	next  Stage
}

var stages = [...]stageSpec{
	StageLongGap:      {name: "long-gap", kind: kindPulses, pulse: Short, count: LongGapPulses, next: StageLeaderLong},
	StageLeaderLong:   {name: "leader-tapemark-long", kind: kindPulses, pulse: Long, count: leaderMarks, next: StageLeaderShort},
	StageLeaderShort:  {name: "leader-tapemark-short", kind: kindPulses, pulse: Short, count: leaderMarks, next: StageLeaderEnd},
	StageLeaderEnd:    {name: "leader-tapemark-end", kind: kindPulses, pulse: Long, count: 1, next: StageHeader1},
	StageHeader1:      {name: "header-1", kind: kindBytes, src: srcHeader, count: HeaderSize, next: StageHeaderSum1},
	StageHeaderSum1:   {name: "header-checksum-1", kind: kindBytes, src: srcHeaderSum, count: 2, next: StageHeader2},
	StageHeader2:      {name: "header-2", kind: kindBytes, src: srcHeader, count: HeaderSize, next: StageHeaderSum2},
	StageHeaderSum2:   {name: "header-checksum-2", kind: kindBytes, src: srcHeaderSum, count: 2, next: StageShortGap},
	StageShortGap:     {name: "short-gap", kind: kindPulses, pulse: Short, count: ShortGapPulses, next: StageTrailerLong},
	StageTrailerLong:  {name: "trailer-tapemark-long", kind: kindPulses, pulse: Long, count: trailerMarks, next: StageTrailerShort},
	StageTrailerShort: {name: "trailer-tapemark-short", kind: kindPulses, pulse: Short, count: trailerMarks, next: StageTrailerEnd},
	StageTrailerEnd:   {name: "trailer-tapemark-end", kind: kindPulses, pulse: Long, count: 1, next: StageFile1},
	StageFile1:        {name: "file-1", kind: kindBytes, src: srcFile, next: StageFileSum1},
	// Most loaders succeed on the first copy, and a second copy makes a
	// length based progress display look like playback restarted.
	StageFileSum1: {name: "file-checksum-1", kind: kindBytes, src: srcFileSum, count: 2, next: StageDone},
	StageFile2:    {name: "file-2", kind: kindBytes, src: srcFile, next: StageFileSum2},
	StageFileSum2: {name: "file-checksum-2", kind: kindBytes, src: srcFileSum, count: 2, next: StageDone},
	StageDone:     {name: "done", kind: kindTerminal, next: StageDone},
}

func (s Stage) String() string {
	if int(s) < len(stages) {
		return stages[s].name
	}
	return "unknown"
}

// Next is the stage that follows s.
func (s Stage) Next() Stage {
	if int(s) < len(stages) {
		return stages[s].next
	}
	return StageDone
}

// Pulses returns the pulse kind and count of a pulse stage. ok is false for
// byte stages and the terminal stage.
func (s Stage) Pulses() (p tape.Pulse, count int, ok bool) {
	if int(s) >= len(stages) || stages[s].kind != kindPulses {
		return tape.Pulse{}, 0, false
	}
	return stages[s].pulse, stages[s].count, true
}

// Bytes returns the number of bytes a byte stage sends. Zero means the count
// comes from the header size field. ok is false for other stages.
func (s Stage) Bytes() (count int, ok bool) {
	if int(s) >= len(stages) || stages[s].kind != kindBytes {
		return 0, false
	}
	return stages[s].count, true
}
