/*
 * block.go, part of mol2props.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package mol2

import (
	"strings"
)

// Block is the text of one molecule record: from its start-marker line to its
// end-marker line, both included. Blocks are not modified after being emitted.
type Block struct {
	index      int
	lines      []Line
	keepCommas bool
}

func newBlock(index int, lines []Line, keepCommas bool) *Block {
	return &Block{index: index, lines: lines, keepCommas: keepCommas}
}

// Index returns the position of the block in the emission order, starting from 0.
func (B *Block) Index() int {
	return B.index
}

// Len returns the number of lines in the block.
func (B *Block) Len() int {
	return len(B.lines)
}

// First returns the number, in the source, of the first line of the block.
func (B *Block) First() int {
	return B.lines[0].Number
}

// Last returns the number, in the source, of the last line of the block.
func (B *Block) Last() int {
	return B.lines[len(B.lines)-1].Number
}

// Line returns the ith line of the block. Panics if out of range.
func (B *Block) Line(i int) Line {
	return B.lines[i]
}

// Lines returns a copy of the lines of the block.
func (B *Block) Lines() []Line {
	ret := make([]Line, len(B.lines))
	copy(ret, B.lines)
	return ret
}

// Text returns the text of the block, one line after the other, each one
// terminated by a newline. Unless the segmenter was told to keep them, every comma
// in the text is removed, including those in molecule names and comments.
func (B *Block) Text() string {
	var sb strings.Builder
	for _, l := range B.lines {
		sb.WriteString(l.Text)
		sb.WriteByte('\n')
	}
	if B.keepCommas {
		return sb.String()
	}
	return strings.ReplaceAll(sb.String(), ",", "")
}
