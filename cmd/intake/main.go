package main

import (
	"context"
	"fmt"
	"os"
	"patient-intake-service/internal/app/bootstrap"
	"patient-intake-service/internal/app/config"
	"patient-intake-service/internal/app/drivers/logger"
	"patient-intake-service/internal/app/services/core/forms"
	"patient-intake-service/internal/app/services/core/intake"
	"patient-intake-service/internal/pkg/dto/requests"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "intake",
		Short: "Patient intake form tooling",
	}
	rootCmd.AddCommand(submitCmd())
	rootCmd.AddCommand(formCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func submitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Register a patient from a YAML draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, _ := cmd.Flags().GetString("owner")
			draftPath, _ := cmd.Flags().GetString("draft")
			documentPath, _ := cmd.Flags().GetString("document")
			contentType, _ := cmd.Flags().GetString("content-type")

			form, err := forms.NewDefaultController()
			if err != nil {
				return err
			}
			err = loadDraftFile(form, draftPath)
			if err != nil {
				return err
			}
			if documentPath != "" {
				err = attachDocumentFile(form, documentPath, contentType)
				if err != nil {
					return err
				}
			}

			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()
			log := logger.NewZapLogger(driverConfig, internalConfig)

			app := bootstrap.ConnectDrivers(driverConfig, internalConfig, log)
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(internalConfig.App.ShutdownTimeoutInSeconds)*time.Second)
				defer cancel()
				if err := app.Shutdown(shutdownCtx); err != nil {
					log.Error("Failed to close drivers", zap.Error(err))
				}
			}()

			registry := bootstrap.NewRegistry(app, newPrintNavigator(cmd.OutOrStdout()))
			orchestrator, release := registry.Acquire(ownerID)
			defer release()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(internalConfig.App.RequestTimeoutInSeconds)*time.Second)
			defer cancel()

			status := intake.SubmitStatusFailed
			submitted := form.HandleSubmit(ctx, func(ctx context.Context, draft *requests.PatientIntakeDraft) {
				status = orchestrator.Submit(ctx, draft, ownerID)
			})
			if !submitted {
				return printValidationErrors(cmd, form.Errors())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", status)
			if status != intake.SubmitStatusCreated {
				return fmt.Errorf("submission %s", status)
			}
			return nil
		},
	}
	cmd.Flags().String("owner", "", "User the patient record is created for")
	cmd.Flags().String("draft", "", "Path to the YAML intake draft")
	cmd.Flags().String("document", "", "Path to a scanned identification document")
	cmd.Flags().String("content-type", "", "Content type of the document, detected when empty")
	cmd.MarkFlagRequired("owner")
	cmd.MarkFlagRequired("draft")
	return cmd
}

func formCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Print the intake form definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			definition, err := forms.LoadFormDefinition()
			if err != nil {
				return err
			}
			output, err := json.MarshalIndent(definition, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		},
	}
}

func printValidationErrors(cmd *cobra.Command, errs requests.ValidationErrorSet) error {
	for field, message := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, message)
	}
	return fmt.Errorf("draft has %d invalid fields", len(errs))
}
