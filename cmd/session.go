package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/commands"
	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/constants"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive task session",
	Long:  "Runs a line-oriented session; the undo stack and audit trail last until the session ends",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)
		taskRepo := repository.NewGormTaskRepository(database)

		auditLog, closeAudit := newAuditLog(cfg)
		defer closeAudit()

		invoker := commands.NewInvoker(cfg.UndoHistorySize)
		taskService := services.NewTaskService(taskRepo, invoker, auditLog)

		return runSession(cmd.Context(), taskService, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

const sessionHelp = `Commands:
  add <title> [| <description>]   create a task
  list                            list all tasks
  complete <id>                   toggle completion
  update <id> <new title>         change a task's title
  delete <id>                     delete a task
  undo                            reverse the last command
  history                         show the session audit trail
  quit                            end the session`

func runSession(ctx context.Context, svc *services.TaskService, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, sessionHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		verb, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch verb {
		case "add":
			sessionAdd(ctx, svc, rest, out)
		case "list":
			sessionList(ctx, svc, out)
		case "complete":
			if task, err := svc.ToggleComplete(ctx, rest); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			} else if task.Status == constants.StatusCompleted {
				fmt.Fprintf(out, "Completed '%s'\n", task.Title)
			} else {
				fmt.Fprintf(out, "Reopened '%s'\n", task.Title)
			}
		case "update":
			sessionUpdate(ctx, svc, rest, out)
		case "delete":
			if err := svc.DeleteTask(ctx, rest); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			} else {
				fmt.Fprintln(out, "Deleted")
			}
		case "undo":
			message, undone, err := svc.Undo(ctx)
			switch {
			case err != nil:
				fmt.Fprintf(out, "error: %v\n", err)
			case !undone:
				fmt.Fprintln(out, "Nothing to undo")
			default:
				fmt.Fprintf(out, "Undid: %s\n", message)
			}
		case "history":
			sessionHistory(ctx, svc, out)
		case "help":
			fmt.Fprintln(out, sessionHelp)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q (try 'help')\n", verb)
		}
	}

	return scanner.Err()
}

func sessionAdd(ctx context.Context, svc *services.TaskService, args string, out io.Writer) {
	title, description, _ := strings.Cut(args, "|")
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	task, err := svc.CreateTask(ctx, title, description)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Added '%s' (%s)\n", task.Title, task.ID)
}

func sessionUpdate(ctx context.Context, svc *services.TaskService, args string, out io.Writer) {
	id, title, _ := strings.Cut(args, " ")
	title = strings.TrimSpace(title)

	task, err := svc.UpdateTask(ctx, id, &title, nil)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Updated '%s'\n", task.Title)
}

func sessionList(ctx context.Context, svc *services.TaskService, out io.Writer) {
	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks")
		return
	}
	for _, task := range tasks {
		marker := " "
		if task.Status == constants.StatusCompleted {
			marker = "x"
		}
		fmt.Fprintf(out, "[%s] %s  %s\n", marker, task.ID, task.Title)
	}
}

func sessionHistory(ctx context.Context, svc *services.TaskService, out io.Writer) {
	entries, err := svc.AuditHistory(ctx)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history")
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(out, "%s  %-13s %s\n", entry.Timestamp.Format(time.RFC3339), entry.Action, entry.Details)
	}
}
