package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"assessment_frc/internal/adapter/http/dto/response"
	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/infrastructure/bootstrap"
	"assessment_frc/internal/usecase"
)

func (c *cli) snapshotCmd() *cobra.Command {
	snapshot := &cobra.Command{Use: "snapshot", Short: "Line item snapshots"}

	var file string
	importCmd := &cobra.Command{
		Use:   "import <assessment_id>",
		Short: "Publish a line item snapshot from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()
			items, err := readSnapshotFile(f)
			if err != nil {
				return err
			}
			return c.withContainer(cmd.Context(), func(ctx context.Context, ct *bootstrap.Container) error {
				s, err := ct.Snapshots.PublishSnapshot(ctx, args[0], items)
				if err != nil {
					return err
				}
				if c.jsonOutput() {
					return printJSON(cmd.OutOrStdout(), response.FromLineItemSnapshot(s))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "snapshot %s published for %s (%d items)\n", s.SnapshotID, s.AssessmentID, len(s.Items))
				return nil
			})
		},
	}
	importCmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with the line items")
	_ = importCmd.MarkFlagRequired("file")

	snapshot.AddCommand(importCmd)
	return snapshot
}

func (c *cli) reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <assessment_id>",
		Short: "Reconcile and print the FRC of an assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withContainer(cmd.Context(), func(ctx context.Context, ct *bootstrap.Container) error {
				res, err := ct.FRC.Reconcile(ctx, args[0])
				if err != nil {
					return err
				}
				if c.jsonOutput() {
					return printJSON(cmd.OutOrStdout(), response.FromFRCResult(res))
				}
				renderFRC(cmd, res)
				return nil
			})
		},
	}
}

func renderFRC(cmd *cobra.Command, res entities.FRCResult) {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetTitle(fmt.Sprintf("FRC %s (snapshot %s)", res.AssessmentID, res.SnapshotID))
	tw.AppendHeader(table.Row{"Line", "Origin", "Category", "Replaces", "Status", "Version", "Baseline", "Effective", "Invoiced", "Match", "Editable"})
	for _, l := range res.Lines {
		tw.AppendRow(table.Row{
			l.LineItemID, l.Origin, l.Category, l.ParentLineItemID, l.DisplayStatus, l.DecisionVersion,
			l.BaselineAmount.StringFixed(2), l.EffectiveAmount.StringFixed(2), l.InvoiceTotal.StringFixed(2), l.MatchConfidence, l.Editable,
		})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "", "Totals", res.Totals.BaselineTotal.StringFixed(2), res.Totals.NewTotal.StringFixed(2), "", "delta", res.Totals.Delta.StringFixed(2)})
	tw.Render()
	if res.Frozen {
		fmt.Fprintln(cmd.OutOrStdout(), "FRC completed, lines are read-only")
	} else if pending := res.Totals.PendingCount(); pending > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d line(s) pending\n", pending)
	}
}

func (c *cli) decideCmd() *cobra.Command {
	var status, value string
	var expectedVersion int64
	cmd := &cobra.Command{
		Use:   "decide <assessment_id> <line_item_id>",
		Short: "Record the decision of a line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.RecordDecisionInput{
				AssessmentID: args[0],
				LineItemID:   args[1],
				Status:       entities.DecisionStatus(strings.ToLower(strings.TrimSpace(status))),
				Actor:        c.actor(),
			}
			if value != "" {
				v, err := decimal.NewFromString(value)
				if err != nil {
					return fmt.Errorf("invalid value: %w", err)
				}
				in.AdjustedValue = &v
			}
			if cmd.Flags().Changed("expected-version") {
				in.ExpectedVersion = &expectedVersion
			}
			return c.withContainer(cmd.Context(), func(ctx context.Context, ct *bootstrap.Container) error {
				d, err := ct.Ledger.RecordDecision(ctx, in)
				if err != nil {
					return err
				}
				if c.jsonOutput() {
					return printJSON(cmd.OutOrStdout(), response.FromDecision(d))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s/%s %s (version %d)\n", d.AssessmentID, d.LineItemID, d.Status, d.Version)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "pending|approved|declined|adjusted")
	cmd.Flags().StringVar(&value, "value", "", "adjusted value, required for adjusted")
	cmd.Flags().Int64Var(&expectedVersion, "expected-version", 0, "fail unless the decision is still at this version")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func (c *cli) invoiceCmd() *cobra.Command {
	invoice := &cobra.Command{Use: "invoice", Short: "Invoice documents"}

	var document, amount string
	attach := &cobra.Command{
		Use:   "attach <assessment_id> <line_item_id>",
		Short: "Attach an invoice document to a line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}
			return c.withContainer(cmd.Context(), func(ctx context.Context, ct *bootstrap.Container) error {
				m, err := ct.Invoices.AttachInvoice(ctx, usecase.AttachInvoiceInput{
					AssessmentID:      args[0],
					LineItemID:        args[1],
					InvoiceDocumentID: document,
					InvoiceAmount:     amt,
					Actor:             c.actor(),
				})
				if err != nil {
					return err
				}
				if c.jsonOutput() {
					return printJSON(cmd.OutOrStdout(), response.FromInvoiceMatch(m))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "invoice %s attached to %s, match %s\n", m.InvoiceDocumentID, m.LineItemID, m.MatchConfidence)
				return nil
			})
		},
	}
	attach.Flags().StringVar(&document, "document", "", "invoice document id")
	attach.Flags().StringVar(&amount, "amount", "", "invoice amount")
	_ = attach.MarkFlagRequired("document")
	_ = attach.MarkFlagRequired("amount")

	invoice.AddCommand(attach)
	return invoice
}

func (c *cli) completeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <assessment_id>",
		Short: "Complete the FRC once every line is decided",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withContainer(cmd.Context(), func(ctx context.Context, ct *bootstrap.Container) error {
				rec, err := ct.FRC.CompleteFRC(ctx, args[0], c.actor())
				if err != nil {
					return err
				}
				if c.jsonOutput() {
					return printJSON(cmd.OutOrStdout(), response.FromFRCRecord(rec))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "FRC %s completed by %s: baseline %s new %s delta %s\n",
					rec.AssessmentID, rec.CompletedBy, rec.BaselineTotal.StringFixed(2), rec.NewTotal.StringFixed(2), rec.Delta.StringFixed(2))
				return nil
			})
		},
	}
}

func (c *cli) auditCmd() *cobra.Command {
	audit := &cobra.Command{Use: "audit", Short: "Audit trail"}
	list := &cobra.Command{
		Use:   "list <assessment_id>",
		Short: "List the audit events of an assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withContainer(cmd.Context(), func(ctx context.Context, ct *bootstrap.Container) error {
				if ct.AuditLog == nil {
					return errors.New("the audit trail can only be listed from the sqlite store")
				}
				events, err := ct.AuditLog.ListByAssessment(ctx, args[0])
				if err != nil {
					return err
				}
				if c.jsonOutput() {
					return printJSON(cmd.OutOrStdout(), events)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(cmd.OutOrStdout())
				tw.AppendHeader(table.Row{"When", "Type", "Line", "From", "To", "Value", "Actor"})
				for _, e := range events {
					value := ""
					if e.AdjustedValue != nil {
						value = e.AdjustedValue.StringFixed(2)
					}
					tw.AppendRow(table.Row{e.OccurredAt.Format("2006-01-02 15:04:05"), e.Type, e.LineItemID, e.OldStatus, e.NewStatus, value, e.Actor})
				}
				tw.Render()
				return nil
			})
		},
	}
	audit.AddCommand(list)
	return audit
}
