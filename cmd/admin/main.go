// Command admin is the fairsplit admin console: browse, search, and manage
// users, groups, and categories, and view usage statistics and activity logs.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fairsplit-admin/internal/adapter"
	"github.com/fairsplit-admin/internal/authstore"
	"github.com/fairsplit-admin/internal/config"
	"github.com/fairsplit-admin/internal/controller"
	"github.com/fairsplit-admin/internal/format"
	"github.com/fairsplit-admin/internal/gateway"
	"github.com/fairsplit-admin/internal/logging"
	"github.com/fairsplit-admin/internal/models"
	"github.com/fairsplit-admin/internal/stats"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: admin <command> [flags]

Commands:
  login       -email -password        sign in and store the session
  logout                              sign out and clear the session
  whoami                              show the stored admin identity
  dashboard                           usage counters and recent activity
  users       list|get|verify|unverify|delete
  groups      list|get|status|delete
  categories  list|create|update|delete`)
	os.Exit(2)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	if len(os.Args) < 2 {
		usage()
	}

	app, err := newApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "login":
		app.login(ctx, os.Args[2:])
	case "logout":
		app.logout(ctx)
	case "whoami":
		app.whoami(ctx)
	case "dashboard":
		app.requireAuth(ctx)
		app.dashboard(ctx)
	case "users":
		app.requireAuth(ctx)
		app.users(ctx, os.Args[2:])
	case "groups":
		app.requireAuth(ctx)
		app.groups(ctx, os.Args[2:])
	case "categories":
		app.requireAuth(ctx)
		app.categories(ctx, os.Args[2:])
	default:
		usage()
	}
}

type app struct {
	store *authstore.Store
	api   *adapter.Client
}

func newApp(cfg *config.Config) (*app, error) {
	var kv authstore.KV
	switch cfg.AuthStore.Backend {
	case "redis":
		redisKV, err := authstore.NewRedisKV(&cfg.AuthStore.Redis)
		if err != nil {
			return nil, err
		}
		kv = redisKV
	case "memory":
		kv = authstore.NewMemoryKV()
	default:
		kv = authstore.NewFileKV(cfg.AuthStore.FilePath)
	}

	store := authstore.New(kv)
	gw := gateway.New(store, gateway.Options{
		Client:            &http.Client{Timeout: cfg.API.Timeout},
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Navigate: func(route string) {
			fmt.Fprintln(os.Stderr, "Session expired - please run 'admin login' again.")
		},
	})
	return &app{store: store, api: adapter.NewClient(cfg.API.BaseURL, gw)}, nil
}

// requireAuth gates the data commands behind the stored-session check, the
// CLI rendition of the dashboard's route guard.
func (a *app) requireAuth(ctx context.Context) {
	if !a.store.IsAuthenticated(ctx) {
		log.Fatal("Not signed in. Run 'admin login' first.")
	}
}

func (a *app) login(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		log.Fatal("login requires -email and -password")
	}

	creds, err := a.api.Login(ctx, *email, *password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	if err := a.store.Save(ctx, creds); err != nil {
		log.Fatalf("Failed to store session: %v", err)
	}
	fmt.Printf("Signed in as %s\n", creds.Admin.Email)
}

func (a *app) logout(ctx context.Context) {
	// Tell the server, but clear the local session even when that fails.
	if err := a.api.Logout(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Logout call failed: %v\n", err)
	}
	a.store.Clear(ctx)
	fmt.Println("Signed out.")
}

func (a *app) whoami(ctx context.Context) {
	creds := a.store.Read(ctx)
	if creds == nil {
		fmt.Println("Not signed in.")
		return
	}
	if creds.Admin == nil {
		fmt.Println("Signed in (no identity record stored).")
		return
	}
	fmt.Printf("%s (%s, role %s)\n", creds.Admin.Email, creds.Admin.ID, creds.Admin.Role)
}

func (a *app) dashboard(ctx context.Context) {
	usage, err := a.api.ProjectUsage(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch project usage: %v", err)
	}

	// The activity feed is best-effort on the original dashboard too.
	activities, err := a.api.RecentActivities(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch activities: %v\n", err)
	}

	fmt.Printf("Users: %d  Groups: %d  Bills: %d  Shopping lists: %d  Transactions: %d\n",
		usage.UserCount, usage.GroupCount, usage.BillCount, usage.ShoppingListCount, usage.TransactionCount)

	if len(activities) == 0 {
		return
	}

	fmt.Println("\nActivity by type:")
	for action, count := range stats.CountByAction(activities) {
		fmt.Printf("  %-8s %d\n", action, count)
	}

	fmt.Println("\nActivity over the last 7 days:")
	for _, day := range stats.Timeline(activities, 7) {
		fmt.Printf("  %s  %d\n", day.Date, day.Count)
	}

	fmt.Println("\nRecent activity:")
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, act := range activities {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", act.Action, act.AdminID, format.Age(act.CreatedAt, true))
	}
	w.Flush()
}

// listFlags are the flags shared by the three list subcommands.
type listFlags struct {
	fs     *flag.FlagSet
	page   *int
	limit  *int
	search *string
}

func newListFlags(name string) *listFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return &listFlags{
		fs:     fs,
		page:   fs.Int("page", 1, "page number"),
		limit:  fs.Int("limit", 10, "page size"),
		search: fs.String("search", "", "search term"),
	}
}

// load drives the controller the way the dashboard does: apply the search
// (which resets to page 1), then move to the requested page.
func load[T any](ctx context.Context, lc *controller.ListController[T], f *listFlags) {
	lc.SetPageSize(ctx, *f.limit)
	if *f.search != "" {
		lc.Search(ctx, *f.search)
	}
	if *f.page != 1 {
		lc.SetPage(ctx, *f.page)
	}
	if msg := lc.Error(); msg != "" {
		log.Fatal(msg)
	}
}

func printPagination(p models.Pagination) {
	fmt.Printf("\nPage %d of %d (%d total)\n", p.Page, p.TotalPages, p.TotalItems)
}

func (a *app) users(ctx context.Context, args []string) {
	if len(args) == 0 {
		usage()
	}
	lc := controller.NewUsersController(a.api)

	switch args[0] {
	case "list":
		f := newListFlags("users list")
		f.fs.Parse(args[1:])
		load(ctx, lc, f)

		users := lc.Items()
		fmt.Printf("Verified on page: %d  Google on page: %d  Recent signups on page: %d\n\n",
			stats.VerifiedUsers(users), stats.GoogleUsers(users), stats.RecentSignups(users, time.Now()))

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tSTATUS\tPROVIDER\tGROUPS\tCREATED")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
				u.ID, u.Username, u.Email, u.Verify, u.LoginProvider(), len(u.Groups), format.Age(u.CreatedAt, true))
		}
		w.Flush()
		printPagination(lc.Pagination())

	case "get":
		requireArg(args, 1, "users get <id>")
		dc := controller.NewUserDetailController(a.api)
		dc.Open(ctx, args[1])
		if msg := dc.Error(); msg != "" {
			log.Fatal(msg)
		}
		u := dc.Detail()
		fmt.Printf("%s (%s)\nEmail: %s\nStatus: %s via %s\nProvider: %s\nGroups: %d  Friends: %d\nCreated: %s\n",
			u.Username, u.ID, u.Email, u.Verify, u.VerificationType, u.LoginProvider(),
			len(u.Groups), len(u.Friends), format.Age(u.CreatedAt, true))
		dc.Close()

	case "verify", "unverify":
		requireArg(args, 1, "users "+args[0]+" <id>")
		verify := models.VerifiedUser
		if args[0] == "unverify" {
			verify = models.UnverifiedUser
		}
		if err := lc.Update(ctx, args[1], map[string]string{"verify": verify}); err != nil {
			log.Fatalf("Failed to update user status: %v", err)
		}
		fmt.Printf("User status updated to %s\n", verify)

	case "delete":
		requireArg(args, 1, "users delete <id>[,<id>...]")
		confirmDelete(ctx, lc, splitIDs(args[1]), "user", "users")

	default:
		usage()
	}
}

func (a *app) groups(ctx context.Context, args []string) {
	if len(args) == 0 {
		usage()
	}
	lc := controller.NewGroupsController(a.api)

	switch args[0] {
	case "list":
		f := newListFlags("groups list")
		sortBy := f.fs.String("sort", "createdAt", "sort key: name, createdAt, updatedAt, members")
		status := f.fs.String("status", "all", "status filter: all, active, archived")
		f.fs.Parse(args[1:])

		if *sortBy != "createdAt" {
			lc.ToggleSort(ctx, *sortBy)
		}
		lc.SetStatusFilter(ctx, *status)
		load(ctx, lc, f)

		groups := lc.Items()
		fmt.Printf("Active on page: %d  Archived on page: %d\n\n",
			stats.ActiveGroups(groups), stats.ArchivedGroups(groups))

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMEMBERS\tSTATUS\tCURRENCY\tCREATED")
		for _, g := range groups {
			st := "active"
			if g.IsArchived {
				st = "archived"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
				g.ID, g.Name, len(g.Members), st, g.Settings.Currency, format.Age(g.CreatedAt, true))
		}
		w.Flush()
		printPagination(lc.Pagination())

	case "get":
		requireArg(args, 1, "groups get <id>")
		dc := controller.NewGroupDetailController(a.api)
		dc.Open(ctx, args[1])
		if msg := dc.Error(); msg != "" {
			log.Fatal(msg)
		}
		g := dc.Detail()
		fmt.Printf("%s (%s)\n%s\nMembers: %d  Archived: %v  Currency: %s  Split: %s\nCreated: %s\n",
			g.Name, g.ID, g.Description, len(g.Members), g.IsArchived,
			g.Settings.Currency, g.Settings.DefaultSplitMethod, format.Age(g.CreatedAt, true))
		if owner := g.Owner(); owner != nil {
			fmt.Printf("Owner: %s (joined %s)\n", owner.UserID, format.Age(owner.JoinedAt, true))
		}
		dc.Close()

	case "status":
		requireArg(args, 2, "groups status <id> <active|inactive|archived>")
		if err := lc.Update(ctx, args[1], map[string]string{"status": args[2]}); err != nil {
			log.Fatalf("Failed to update group status: %v", err)
		}
		fmt.Printf("Group status updated to %s\n", args[2])

	case "delete":
		requireArg(args, 1, "groups delete <id>[,<id>...]")
		confirmDelete(ctx, lc, splitIDs(args[1]), "group", "groups")

	default:
		usage()
	}
}

func (a *app) categories(ctx context.Context, args []string) {
	if len(args) == 0 {
		usage()
	}
	lc := controller.NewCategoriesController(a.api)

	switch args[0] {
	case "list":
		f := newListFlags("categories list")
		f.fs.Parse(args[1:])
		load(ctx, lc, f)

		categories := lc.Items()
		fmt.Printf("Distinct names on page: %d  Created this week on page: %d\n\n",
			stats.DistinctCategoryNames(categories), stats.RecentCategories(categories, time.Now()))

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tCREATED")
		for _, c := range categories {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Description, format.Age(c.CreatedAt, true))
		}
		w.Flush()
		printPagination(lc.Pagination())

	case "create":
		fs := flag.NewFlagSet("categories create", flag.ExitOnError)
		name := fs.String("name", "", "category name")
		description := fs.String("description", "", "category description")
		fs.Parse(args[1:])
		if err := lc.Create(ctx, map[string]string{"name": *name, "description": *description}); err != nil {
			log.Fatalf("Failed to create category: %v", err)
		}
		fmt.Println("Category created successfully")

	case "update":
		requireArg(args, 1, "categories update <id> -name ... -description ...")
		fs := flag.NewFlagSet("categories update", flag.ExitOnError)
		name := fs.String("name", "", "category name")
		description := fs.String("description", "", "category description")
		fs.Parse(args[2:])
		if err := lc.Update(ctx, args[1], map[string]string{"name": *name, "description": *description}); err != nil {
			log.Fatalf("Failed to update category: %v", err)
		}
		fmt.Println("Category updated successfully")

	case "delete":
		requireArg(args, 1, "categories delete <id>[,<id>...]")
		confirmDelete(ctx, lc, splitIDs(args[1]), "category", "categories")

	default:
		usage()
	}
}

// confirmDelete runs a delete through the confirmation dialog state machine:
// open, prompt the operator, then confirm or cancel.
func confirmDelete[T any](ctx context.Context, lc *controller.ListController[T], ids []string, singular, plural string) {
	dialog := controller.NewConfirmDialog(
		func(ctx context.Context, target []string) (string, error) {
			result, err := lc.DeleteMany(ctx, target)
			if err != nil {
				return "", err
			}
			return controller.SummarizeDelete(result, singular, plural), nil
		},
		nil,
		stdoutNotifier{},
	)
	dialog.Open(ids...)

	fmt.Printf("Delete %d %s? This cannot be undone. [y/N] ", len(ids), plural)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.TrimSpace(strings.ToLower(answer)) != "y" {
		dialog.Cancel()
		fmt.Println("Cancelled.")
		return
	}
	dialog.Confirm(ctx)
}

type stdoutNotifier struct{}

func (stdoutNotifier) Success(msg string) { fmt.Println(msg) }
func (stdoutNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, msg) }

func requireArg(args []string, index int, usageLine string) {
	if len(args) <= index || args[index] == "" {
		log.Fatalf("Usage: admin %s", usageLine)
	}
}

func splitIDs(arg string) []string {
	parts := strings.Split(arg, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
