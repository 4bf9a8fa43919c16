// This file is part of thumbwriter.
//
// thumbwriter is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// thumbwriter is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with thumbwriter.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/jetsetilly/thumbwriter/logger"
	"github.com/jetsetilly/thumbwriter/register"
	"github.com/jetsetilly/thumbwriter/thumb"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "thumbgen",
		Short: "thumbgen — assemble small Thumb-2 code snippets and dump the bytes",
	}

	var base string
	var pad int

	trampolineCmd := &cobra.Command{
		Use:   "trampoline [target-address]",
		Short: "Assemble a trampoline that loads an address into R0 and branches to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid target address: %w", err)
			}

			baseAddr, err := strconv.ParseUint(base, 0, 32)
			if err != nil {
				return fmt.Errorf("invalid base address: %w", err)
			}

			buf := make([]byte, 32)
			w := thumb.New(buf, uint32(baseAddr))
			defer w.Unref()

			if err := w.LDRRegU32(register.R0, uint32(target)); err != nil {
				return err
			}
			w.BX(register.R0)

			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println(hex.EncodeToString(buf[:w.Offset()]))
			return nil
		},
	}
	trampolineCmd.Flags().StringVar(&base, "base", "0x1000", "base address the trampoline is assembled at")

	callCmd := &cobra.Command{
		Use:   "call [function-address] [arg...]",
		Short: "Assemble an AAPCS call to function-address with the given immediate arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid function address: %w", err)
			}

			baseAddr, err := strconv.ParseUint(base, 0, 32)
			if err != nil {
				return fmt.Errorf("invalid base address: %w", err)
			}

			var callArgs []thumb.Argument
			for _, a := range args[1:] {
				v, err := strconv.ParseUint(a, 0, 32)
				if err != nil {
					return fmt.Errorf("invalid argument %q: %w", a, err)
				}
				callArgs = append(callArgs, thumb.Argument{Kind: thumb.ArgAddress, Address: uint32(v)})
			}

			buf := make([]byte, 128+pad)
			w := thumb.New(buf, uint32(baseAddr))
			defer w.Unref()

			if err := w.CallAddress(uint32(fn), callArgs); err != nil {
				return err
			}
			w.BX(register.LR)

			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println(hex.EncodeToString(buf[:w.Offset()]))
			return nil
		},
	}
	callCmd.Flags().StringVar(&base, "base", "0x1000", "base address the call sequence is assembled at")
	callCmd.Flags().IntVar(&pad, "pad", 0, "extra scratch bytes to reserve for the stack-argument case")

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Print the tail of this process's in-memory log ring buffer",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Tail(os.Stdout, 50)
			return nil
		},
	}

	rootCmd.AddCommand(trampolineCmd, callCmd, logCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
