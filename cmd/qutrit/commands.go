package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qutrit/batch"
	"github.com/katalvlaran/qutrit/circuit"
	"github.com/katalvlaran/qutrit/codec"
	"github.com/katalvlaran/qutrit/matrix"
	"github.com/katalvlaran/qutrit/ops"
	"github.com/katalvlaran/qutrit/stateprep"
	"github.com/katalvlaran/qutrit/tensor"
	"github.com/katalvlaran/qutrit/wires"
)

// parseLabels keeps integer arguments as ints so "0" names the same wire as
// a YAML 0; everything else is a string label.
func parseLabels(args []string) []any {
	out := make([]any, len(args))
	for i, s := range args {
		if n, err := strconv.Atoi(s); err == nil {
			out[i] = n
		} else {
			out[i] = s
		}
	}
	return out
}

func parseWires(args []string) (wires.Wires, error) {
	return wires.New(parseLabels(args)...)
}

func formatComplex(v complex128) string {
	if imag(v) == 0 {
		return strconv.FormatFloat(real(v), 'g', 6, 64)
	}
	return strconv.FormatComplex(v, 'g', 6, 128)
}

// gateFlags are the descriptor options shared by the gate commands.
type gateFlags struct {
	subspace []int
	control  int
}

func (g *gateFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&g.subspace, "subspace", nil, "Two-level subspace, e.g. 1,2")
	cmd.Flags().IntVar(&g.control, "control", ops.DefaultControlValue, "TCNOT control value")
}

// operator builds a descriptor from "GATE WIRE..." arguments.
func (g *gateFlags) operator(cmd *cobra.Command, args []string) (ops.Operator, error) {
	f, err := ops.ParseFamily(args[0])
	if err != nil {
		return ops.Operator{}, err
	}
	w, err := parseWires(args[1:])
	if err != nil {
		return ops.Operator{}, err
	}
	var opts []ops.Option
	if cmd.Flags().Changed("subspace") {
		opts = append(opts, ops.WithSubspace(g.subspace))
	}
	if cmd.Flags().Changed("control") {
		opts = append(opts, ops.WithControlValue(g.control))
	}
	return ops.New(f, w, opts...)
}

// writeSnapshot encodes into path at the configured compression level.
func (a *app) writeSnapshot(path string, encode func(io.Writer, ...codec.Option) error) error {
	level, err := codec.ParseLevel(a.cfg.Compression)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encode(f, codec.WithCompression(level)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.logger.Info("snapshot written", zap.String("path", path), zap.String("compression", a.cfg.Compression))
	return nil
}

func (a *app) matrixCmd() *cobra.Command {
	var (
		g     gateFlags
		order []string
		out   string
		check bool
	)
	cmd := &cobra.Command{
		Use:   "matrix GATE WIRE...",
		Short: "Print a gate's canonical matrix",
		Long: `Prints the canonical matrix of a gate acting on the given wires, or its
expansion onto a larger wire order with --order.

Example:
  qutrit matrix TCNOT 0 1 --subspace 1,2 --control 0
  qutrit matrix TX 1 --order 0,1`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := g.operator(cmd, args)
			if err != nil {
				return err
			}
			var m *matrix.Dense
			if len(order) > 0 {
				w, err := parseWires(order)
				if err != nil {
					return err
				}
				m, err = ops.ExpandMatrix(op, w)
				if err != nil {
					return err
				}
			} else if m, err = op.Matrix(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%v\n%s", op, m)
			if check {
				eps := matrix.WithEpsilon(a.cfg.Epsilon)
				unitary, err := matrix.IsUnitary(m, eps)
				if err != nil {
					return err
				}
				hermitian, err := matrix.IsHermitian(m, eps)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "unitary: %t\nhermitian: %t\n", unitary, hermitian)
			}
			if out != "" {
				return a.writeSnapshot(out, func(dst io.Writer, opts ...codec.Option) error {
					return codec.EncodeMatrix(dst, m, opts...)
				})
			}
			return nil
		},
	}
	g.bind(cmd)
	cmd.Flags().StringSliceVar(&order, "order", nil, "Expand onto this wire order")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write a compressed snapshot to this file")
	cmd.Flags().BoolVar(&check, "check", false, "Report whether the matrix is unitary and Hermitian")
	return cmd
}

func (a *app) eigvalsCmd() *cobra.Command {
	var g gateFlags
	cmd := &cobra.Command{
		Use:   "eigvals GATE WIRE...",
		Short: "Print a gate's eigenvalues",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := g.operator(cmd, args)
			if err != nil {
				return err
			}
			ev, err := op.Eigvals()
			if err != nil {
				return err
			}
			for _, v := range ev {
				fmt.Fprintln(cmd.OutOrStdout(), formatComplex(v))
			}
			return nil
		},
	}
	g.bind(cmd)
	return cmd
}

func (a *app) adjointCmd() *cobra.Command {
	var g gateFlags
	cmd := &cobra.Command{
		Use:   "adjoint GATE WIRE...",
		Short: "Print the descriptor of a gate's adjoint",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := g.operator(cmd, args)
			if err != nil {
				return err
			}
			adj, err := op.Adjoint()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), adj)
			return nil
		},
	}
	g.bind(cmd)
	return cmd
}

func (a *app) powCmd() *cobra.Command {
	var (
		g gateFlags
		z float64
	)
	cmd := &cobra.Command{
		Use:   "pow GATE WIRE...",
		Short: "Decompose a gate power into repeated descriptors",
		Long: `Prints the descriptors whose product is GATE^z and the resulting matrix.
Periodic gates reduce z modulo their period; negative powers of TS and TT
are undefined.

Example:
  qutrit pow TShift 0 --z -1`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := g.operator(cmd, args)
			if err != nil {
				return err
			}
			steps, err := op.Pow(z)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d step(s)\n", len(steps))
			for _, s := range steps {
				fmt.Fprintln(w, s)
			}
			m, err := ops.PowMatrix(op, z)
			if err != nil {
				return err
			}
			fmt.Fprint(w, m)
			return nil
		},
	}
	g.bind(cmd)
	cmd.Flags().Float64Var(&z, "z", 1, "Exponent (must be an integer value)")
	return cmd
}

func (a *app) basisCmd() *cobra.Command {
	var (
		on, order []string
		trits     []int
		decompose bool
	)
	cmd := &cobra.Command{
		Use:   "basis",
		Short: "Prepare a computational basis state",
		Long: `Prints the one-hot state vector of a basis state, projected onto --order
when given, or the TShift sequence that prepares it with --decompose.

Example:
  qutrit basis --wires a,b --trits 2,1 --order a,x,b`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseWires(on)
			if err != nil {
				return err
			}
			b, err := stateprep.NewBasisState(trits, w)
			if err != nil {
				return err
			}
			return a.printPreparation(cmd, b, order, decompose)
		},
	}
	cmd.Flags().StringSliceVar(&on, "wires", nil, "Wire labels (required)")
	cmd.Flags().IntSliceVar(&trits, "trits", nil, "One trit (0, 1 or 2) per wire (required)")
	cmd.Flags().StringSliceVar(&order, "order", nil, "Project onto this wire order")
	cmd.Flags().BoolVar(&decompose, "decompose", false, "Print the preparing gate sequence instead")
	_ = cmd.MarkFlagRequired("wires")
	_ = cmd.MarkFlagRequired("trits")
	return cmd
}

func (a *app) vectorCmd() *cobra.Command {
	var (
		on, order []string
		amps      []float64
	)
	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Prepare an explicit amplitude vector",
		Long: `Validates an amplitude vector given as flattened (re, im) pairs and prints
it, projected onto --order when given.

Example:
  qutrit vector --wires q --amplitudes 0.6,0,0,0.8,0,0 --order p,q`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseWires(on)
			if err != nil {
				return err
			}
			if len(amps)%2 != 0 {
				return fmt.Errorf("amplitudes must come in (re, im) pairs, got %d values", len(amps))
			}
			data := make([]complex128, len(amps)/2)
			for i := range data {
				data[i] = complex(amps[2*i], amps[2*i+1])
			}
			t, err := tensor.New(data, len(data))
			if err != nil {
				return err
			}
			sv, err := stateprep.NewStateVector(t, w, stateprep.WithTolerance(a.cfg.Tolerance))
			if err != nil {
				return err
			}
			return a.printPreparation(cmd, sv, order, false)
		},
	}
	cmd.Flags().StringSliceVar(&on, "wires", nil, "Wire labels (required)")
	cmd.Flags().Float64SliceVar(&amps, "amplitudes", nil, "Flattened (re, im) amplitude pairs (required)")
	cmd.Flags().StringSliceVar(&order, "order", nil, "Project onto this wire order")
	_ = cmd.MarkFlagRequired("wires")
	_ = cmd.MarkFlagRequired("amplitudes")
	return cmd
}

func (a *app) printPreparation(cmd *cobra.Command, p stateprep.Preparation, order []string, decompose bool) error {
	w := cmd.OutOrStdout()
	if decompose {
		steps, err := p.Decomposition()
		if err != nil {
			return err
		}
		for _, s := range steps {
			fmt.Fprintln(w, s)
		}
		return nil
	}
	target := p.Wires()
	if len(order) > 0 {
		var err error
		if target, err = parseWires(order); err != nil {
			return err
		}
	}
	state, err := p.StateVector(target)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, state)
	return nil
}

func (a *app) runCmd() *cobra.Command {
	var (
		unitary bool
		out     string
	)
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Evaluate a YAML circuit",
		Long: `Builds the circuit described in FILE, applies every step to its prepared
state and prints the final state (or the circuit unitary with --unitary).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := circuit.Load(args[0])
			if err != nil {
				return err
			}
			c, err := doc.Build(stateprep.WithTolerance(a.cfg.Tolerance))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
			defer cancel()

			r := circuit.NewRunner(
				circuit.WithLogger(a.logger),
				circuit.WithEvaluator(batch.NewEvaluator(
					batch.WithConcurrency(a.cfg.Concurrency),
					batch.WithLogger(a.logger),
				)),
			)
			w := cmd.OutOrStdout()
			if unitary {
				u, err := r.Unitary(ctx, c)
				if err != nil {
					return err
				}
				fmt.Fprint(w, u)
				if out != "" {
					return a.writeSnapshot(out, func(dst io.Writer, opts ...codec.Option) error {
						return codec.EncodeMatrix(dst, u, opts...)
					})
				}
				return nil
			}

			state, err := r.Run(ctx, c)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, state)
			if out != "" {
				return a.writeSnapshot(out, func(dst io.Writer, opts ...codec.Option) error {
					return codec.EncodeTensor(dst, state, opts...)
				})
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&unitary, "unitary", false, "Print the circuit unitary instead of the final state")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write a compressed snapshot of the result to this file")
	return cmd
}

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the contents of a snapshot written with --out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			m, err := codec.DecodeMatrix(bytes.NewReader(data))
			if err == nil {
				fmt.Fprintf(w, "matrix %dx%d\n%s", m.Rows(), m.Cols(), m)
				return nil
			}
			if !errors.Is(err, codec.ErrKind) {
				return err
			}
			t, err := codec.DecodeTensor(bytes.NewReader(data))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "tensor %v\n%s\n", t.Shape(), t)
			return nil
		},
	}
}
