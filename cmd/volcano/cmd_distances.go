package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/volcano/distance"
)

// distanceTable is the json form of the distances command.
type distanceTable struct {
	IDs  []string `json:"ids"`
	Rows [][]int  `json:"rows"`
}

func newDistancesCmd(a *app) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "distances [input]",
		Short: "Print shortest distances between the entry node and every reward node",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("start") {
				a.cfg.Start = start
			}
			net, err := a.loadNetwork(cmd, args)
			if err != nil {
				return err
			}
			dist, err := distance.Build(net,
				distance.WithContext(cmd.Context()),
				distance.WithWorkers(a.cfg.Workers))
			if err != nil {
				return err
			}

			keep := append([]string{a.cfg.Start}, net.RewardIDs()...)
			r, err := dist.Reduce(keep)
			if err != nil {
				return err
			}

			return writeDistances(cmd, a.cfg.Format, r)
		},
	}
	cmd.Flags().StringVar(&start, "start", "AA", "Entry node id (listed first)")

	return cmd
}

func writeDistances(cmd *cobra.Command, format string, m *distance.Matrix) error {
	ids := m.IDs()
	rows := make([][]int, len(ids))
	for i := range ids {
		rows[i] = make([]int, len(ids))
		for j := range ids {
			rows[i][j] = m.At(i, j)
		}
	}
	if format == "json" {
		return writeJSON(cmd.OutOrStdout(), distanceTable{IDs: ids, Rows: rows})
	}

	headers := append([]string{""}, ids...)
	cells := make([][]string, len(ids))
	for i, id := range ids {
		cells[i] = []string{id}
		for _, d := range rows[i] {
			if d == distance.Unreachable {
				cells[i] = append(cells[i], "-")
				continue
			}
			cells[i] = append(cells[i], strconv.Itoa(d))
		}
	}

	return formatTable(cmd.OutOrStdout(), headers, cells)
}
