package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Real-Streeter/liberty-command/pkg/boardclient"
	"github.com/Real-Streeter/liberty-command/pkg/dragdrop"
	"github.com/Real-Streeter/liberty-command/pkg/logger"

	"github.com/spf13/cobra"
)

func moveCmd() *cobra.Command {
	var after bool
	cmd := &cobra.Command{
		Use:   "move <task-id> <target-id>",
		Short: "Drag a task onto another task or column of a running server",
		Long: "Drops <task-id> onto <target-id>. A task target places it before that task, " +
			"or after it with --after. A column target appends it to the column.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := boardclient.New(v.GetString("BOARD_URL"), nil)
			if err != nil {
				return err
			}
			p, err := moveTask(cmd.Context(), client, v.GetString("BOARD_USER"), v.GetString("BOARD_PASSWORD"), args[0], args[1], after)
			if err != nil {
				return err
			}
			printBoard(os.Stdout, p)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&after, "after", false, "place after the target task")
	flags.String("url", "http://localhost:3001", "server base URL")
	flags.String("user", "", "member name to log in as")
	flags.String("password", "", "member password")
	_ = v.BindPFlag("BOARD_URL", flags.Lookup("url"))
	_ = v.BindPFlag("BOARD_USER", flags.Lookup("user"))
	_ = v.BindPFlag("BOARD_PASSWORD", flags.Lookup("password"))
	return cmd
}

// moveTask logs in, performs the move and logs out again.
func moveTask(ctx context.Context, client *boardclient.Client, user, password, taskID, targetID string, after bool) (dragdrop.Partition, error) {
	if _, err := client.Login(ctx, user, password); err != nil {
		return dragdrop.Partition{}, fmt.Errorf("login: %w", err)
	}
	defer func() {
		if err := client.Logout(ctx); err != nil {
			logger.Component("move").WithError(err).Warn("logout failed")
		}
	}()
	return runMove(ctx, boardclient.Board{Client: client}, taskID, targetID, after)
}

// runMove drags taskID onto targetID through a session on board and returns
// the resulting partition.
func runMove(ctx context.Context, board dragdrop.Board, taskID, targetID string, after bool) (dragdrop.Partition, error) {
	session, err := dragdrop.NewSession(ctx, board, nil)
	if err != nil {
		return dragdrop.Partition{}, err
	}
	if err := session.Start(taskID); err != nil {
		return dragdrop.Partition{}, fmt.Errorf("%s: %w", taskID, err)
	}

	target := dropTarget(session.Partition(), taskID, targetID, after)
	session.Over(target)
	if err := session.Drop(ctx, &target); err != nil {
		return dragdrop.Partition{}, fmt.Errorf("move rejected: %w", err)
	}
	return session.Partition(), nil
}

// dropTarget is the pointer target that places taskID before targetID, or
// after it. Across columns only the side of the target's midpoint matters.
// Within a column a drop lands on the hovered item's index, so the item
// sitting at the wanted final index is returned instead.
func dropTarget(p dragdrop.Partition, taskID, targetID string, after bool) dragdrop.Target {
	target := dragdrop.Target{ID: targetID, PointerY: 0, TargetMidY: 1}
	if after {
		target.PointerY = 2
	}

	sg, si, ok := p.Locate(taskID)
	if !ok || si < 0 {
		return target
	}
	tg, ti, ok := p.Locate(targetID)
	if !ok || ti < 0 || sg != tg || si == ti {
		return target
	}

	final := ti
	if after {
		final++
	}
	if si < ti {
		// the task leaves a gap above the target
		final--
	}
	target.ID = p.Groups[sg].Items[final].ID
	return target
}

func printBoard(w io.Writer, p dragdrop.Partition) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "COLUMN\t#\tTASK\tCONTENT\tPRIORITY")
	for _, g := range p.Groups {
		if len(g.Items) == 0 {
			fmt.Fprintf(tw, "%s\t-\t\t\t\n", g.ID)
			continue
		}
		for i, it := range g.Items {
			card, _ := it.Payload.(boardclient.Card)
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", g.ID, i, it.ID, card.Content, card.Priority)
		}
	}
}
