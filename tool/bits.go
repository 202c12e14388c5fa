// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/bitalgo"
	"github.com/cockroachdb/bitalgo/internal/wordops"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// bitsT implements the bit range tools, including both configuration state
// and the commands themselves.
type bitsT struct {
	Count   *cobra.Command
	Reverse *cobra.Command
	Dump    *cobra.Command

	logger Logger

	// Configuration.
	width   int
	from    int
	to      int
	value   int
	binary  bool
	verbose bool
}

func newBits(logger Logger) *bitsT {
	b := &bitsT{logger: logger}

	b.Count = &cobra.Command{
		Use:   "count <words>",
		Short: "count the bits of a range equal to a value",
		Long: `
Count the bits in [--from, --to) of the sequence of words that are equal to
--value. Words are unsigned integer literals of --width bits (e.g. 0xb2 or
0b10110010); bit i of the sequence is bit i%width of word i/width, with bit 0
the least significant.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: b.runCount,
	}
	b.Reverse = &cobra.Command{
		Use:   "reverse <words>",
		Short: "reverse the order of the bits of a range",
		Long: `
Reverse the order of the bits in [--from, --to) of the sequence of words and
print the resulting words. Bits outside of the range are unchanged.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: b.runReverse,
	}
	b.Dump = &cobra.Command{
		Use:   "dump <words>",
		Short: "print a table of words",
		Long: `
Print each word of the sequence in hex and binary (most significant bit first)
along with the bit indexes it holds and its population count.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: b.runDump,
	}

	for _, cmd := range []*cobra.Command{b.Count, b.Reverse, b.Dump} {
		cmd.Flags().IntVarP(
			&b.width, "width", "w", 64, "word width in bits (8, 16, 32 or 64)")
		cmd.Flags().BoolVar(
			&b.binary, "binary", false, "print words in binary rather than hex")
		cmd.Flags().BoolVarP(
			&b.verbose, "verbose", "v", false, "log the decomposition of the range")
	}
	for _, cmd := range []*cobra.Command{b.Count, b.Reverse} {
		cmd.Flags().IntVar(
			&b.from, "from", 0, "index of the first bit of the range")
		cmd.Flags().IntVar(
			&b.to, "to", -1, "index one past the last bit of the range (-1 for the end)")
	}
	b.Count.Flags().IntVar(
		&b.value, "value", 1, "bit value to count (0 or 1)")
	return b
}

func (b *bitsT) runCount(cmd *cobra.Command, args []string) error {
	if b.value != 0 && b.value != 1 {
		return errors.Newf("invalid --value %d: must be 0 or 1", b.value)
	}
	switch b.width {
	case 8:
		return countWords[uint8](b, cmd.OutOrStdout(), args)
	case 16:
		return countWords[uint16](b, cmd.OutOrStdout(), args)
	case 32:
		return countWords[uint32](b, cmd.OutOrStdout(), args)
	case 64:
		return countWords[uint64](b, cmd.OutOrStdout(), args)
	default:
		return errors.Newf("unsupported word width %d", b.width)
	}
}

func (b *bitsT) runReverse(cmd *cobra.Command, args []string) error {
	switch b.width {
	case 8:
		return reverseWords[uint8](b, cmd.OutOrStdout(), args)
	case 16:
		return reverseWords[uint16](b, cmd.OutOrStdout(), args)
	case 32:
		return reverseWords[uint32](b, cmd.OutOrStdout(), args)
	case 64:
		return reverseWords[uint64](b, cmd.OutOrStdout(), args)
	default:
		return errors.Newf("unsupported word width %d", b.width)
	}
}

func (b *bitsT) runDump(cmd *cobra.Command, args []string) error {
	switch b.width {
	case 8:
		return dumpWords[uint8](b, cmd.OutOrStdout(), args)
	case 16:
		return dumpWords[uint16](b, cmd.OutOrStdout(), args)
	case 32:
		return dumpWords[uint32](b, cmd.OutOrStdout(), args)
	case 64:
		return dumpWords[uint64](b, cmd.OutOrStdout(), args)
	default:
		return errors.Newf("unsupported word width %d", b.width)
	}
}

func (b *bitsT) logRange(first, last fmt.Stringer, length int, firstAligned, lastAligned bool) {
	if !b.verbose {
		return
	}
	b.logger.Infof("range [%s, %s): %d bits, first aligned: %t, last aligned: %t",
		first, last, length, firstAligned, lastAligned)
}

func countWords[W bitalgo.Word](b *bitsT, w io.Writer, args []string) error {
	words, err := parseWords[W](args)
	if err != nil {
		return err
	}
	first, last, err := bitRange(words, b.from, b.to)
	if err != nil {
		return err
	}
	b.logRange(first, last, first.Distance(last), first.IsAligned(), last.IsAligned())
	fmt.Fprintf(w, "%d\n", bitalgo.Count(first, last, bitalgo.Bit(b.value)))
	return nil
}

func reverseWords[W bitalgo.Word](b *bitsT, w io.Writer, args []string) error {
	words, err := parseWords[W](args)
	if err != nil {
		return err
	}
	first, last, err := bitRange(words, b.from, b.to)
	if err != nil {
		return err
	}
	b.logRange(first, last, first.Distance(last), first.IsAligned(), last.IsAligned())
	bitalgo.Reverse(first, last)
	out := make([]string, len(words))
	for i := range words {
		out[i] = formatWord(words[i], b.binary)
	}
	fmt.Fprintln(w, strings.Join(out, " "))
	return nil
}

func dumpWords[W bitalgo.Word](b *bitsT, w io.Writer, args []string) error {
	words, err := parseWords[W](args)
	if err != nil {
		return err
	}
	digits := int(wordops.Digits[W]())
	if b.verbose {
		b.logger.Infof("%d %d-bit words, %d bits", len(words), digits, len(words)*digits)
	}
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"word", "bits", "value", "popcount"})
	tw.SetAutoFormatHeaders(false)
	for i, word := range words {
		tw.Append([]string{
			strconv.Itoa(i),
			fmt.Sprintf("[%d, %d)", i*digits, (i+1)*digits),
			formatWord(word, b.binary),
			strconv.Itoa(wordops.Popcnt(word)),
		})
	}
	tw.Render()
	return nil
}
