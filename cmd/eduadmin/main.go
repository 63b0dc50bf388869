package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/deaduz/eduadmin/internal/api"
	"github.com/deaduz/eduadmin/internal/cache"
	"github.com/deaduz/eduadmin/internal/config"
	"github.com/deaduz/eduadmin/internal/content"
	"github.com/deaduz/eduadmin/internal/domain"
	"github.com/deaduz/eduadmin/internal/interest"
	"github.com/deaduz/eduadmin/internal/log"
	"github.com/deaduz/eduadmin/internal/search"
	"github.com/deaduz/eduadmin/internal/session"
	"github.com/deaduz/eduadmin/internal/store"
)

// Version is set at build time via -ldflags
var Version = "dev"

const usage = `eduadmin - admin client for the dead.uz learning platform

Usage:
  eduadmin <command> [arguments]

Commands:
  login                          sign in with staff credentials
  logout                         clear the stored session
  whoami                         show the signed-in profile
  dashboard                      show platform stats
  courses                        list courses
  units <courseId>               list units of a course
  sections <courseId> <unitId>   list sections of a unit
  lessons <courseId> <unitId> <sectionId>
                                 list lessons of a section
  questions <courseId> <unitId> <sectionId> <lessonId>
                                 list quiz questions of a lesson
  interests [-active]            list the interest catalog
  search <query>                 fuzzy-search courses and interests
  version                        print version
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if args[0] == "version" {
		fmt.Printf("eduadmin %s\n", Version)
		return
	}

	if err := run(args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles everything a command needs.
type app struct {
	session   *session.Session
	content   *content.Service
	interests *interest.Service
	search    *search.Service
	logger    *slog.Logger
}

func run(command string, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.Setup(cfg.Logging)
	if err != nil {
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)
	logger.Info("starting eduadmin", "version", Version, "command", command)

	st, err := store.Open(cfg.State.Dir)
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer st.Close()

	sess := session.New(st, logger)
	if err := sess.Hydrate(); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	c := cache.New(logger)
	idx := search.NewService(logger)
	sess.OnClear(func() {
		c.Purge()
		idx.Clear()
	})

	client := api.NewClient(cfg.API.BaseURL, sess, logger,
		api.WithTimeout(cfg.API.Timeout),
		api.WithUnauthorizedHook(sess.Invalidate),
	)

	a := &app{
		session:   sess,
		content:   content.NewService(client, c, logger),
		interests: interest.NewService(client, c, logger),
		search:    idx,
		logger:    logger,
	}

	ctx := context.Background()
	switch command {
	case "login":
		return a.login(ctx, client)
	case "logout":
		return a.session.Logout()
	case "whoami":
		return a.whoami()
	case "dashboard":
		return a.dashboard(ctx)
	case "courses":
		return a.courses(ctx)
	case "units":
		return a.units(ctx, args)
	case "sections":
		return a.sections(ctx, args)
	case "lessons":
		return a.lessons(ctx, args)
	case "questions":
		return a.questions(ctx, args)
	case "interests":
		return a.listInterests(ctx, args)
	case "search":
		return a.find(ctx, args)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, auth domain.AuthRepository) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Email or phone: ")
	identifier, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	identifier = strings.TrimSpace(identifier)

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return err
	}

	token, user, err := auth.Login(ctx, identifier, string(password))
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := a.session.Login(token, user); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	if user != nil {
		fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Role)
	} else {
		fmt.Println("Signed in")
	}
	return nil
}

func (a *app) whoami() error {
	user := a.session.User()
	if user == nil {
		fmt.Println("Not signed in")
		return nil
	}
	out, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func (a *app) dashboard(ctx context.Context) error {
	stats, err := a.content.Dashboard(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Users: %d total, %d monthly active, %d daily active\n",
		stats.TotalUsers, stats.MonthlyActiveUsers, stats.DailyActiveUsers)
	for _, cs := range stats.CourseStats {
		fmt.Printf("  %-30s %5d enrolled  %.1f★ (%d)\n", cs.Title, cs.EnrolledUsers, cs.AverageRating, cs.TotalRatings)
	}
	return nil
}

func (a *app) courses(ctx context.Context) error {
	courses, err := a.content.Courses(ctx)
	if err != nil {
		return err
	}
	for _, c := range courses {
		fmt.Printf("%-26s %-30s %-12s %3d lessons\n", c.ID, c.Title, c.Level, c.TotalLessons)
	}
	return nil
}

func (a *app) units(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: eduadmin units <courseId>")
	}
	units, err := a.content.Units(ctx, args[0])
	if err != nil {
		return err
	}
	for _, u := range units {
		fmt.Printf("%3d. %-26s %s\n", u.Order, u.ID, u.Title)
	}
	return nil
}

func (a *app) sections(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: eduadmin sections <courseId> <unitId>")
	}
	sections, err := a.content.Sections(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	for _, s := range sections {
		fmt.Printf("%3d. %-26s %s\n", s.Order, s.ID, s.Title)
	}
	return nil
}

func (a *app) lessons(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: eduadmin lessons <courseId> <unitId> <sectionId>")
	}
	lessons, err := a.content.Lessons(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	for _, l := range lessons {
		fmt.Printf("%3d. %-26s %-6s %s\n", l.Order, l.ID, l.Type, l.Title)
	}
	return nil
}

func (a *app) questions(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return errors.New("usage: eduadmin questions <courseId> <unitId> <sectionId> <lessonId>")
	}
	questions, err := a.content.Questions(ctx, args[0], args[1], args[2], args[3])
	if err != nil {
		return err
	}
	for _, q := range questions {
		fmt.Printf("%3d. %s\n", q.Order, q.Question)
		for i, opt := range q.Options {
			marker := " "
			if i == q.CorrectOptionIndex {
				marker = "*"
			}
			fmt.Printf("     %s %s\n", marker, opt)
		}
	}
	return nil
}

func (a *app) listInterests(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("interests", flag.ContinueOnError)
	activeOnly := fs.Bool("active", false, "only the user-visible active set")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		interests []domain.Interest
		err       error
	)
	if *activeOnly {
		interests, err = a.interests.ActiveInterests(ctx)
	} else {
		interests, err = a.interests.Interests(ctx)
	}
	if err != nil {
		return err
	}
	for _, in := range interests {
		state := "inactive"
		if in.IsActive {
			state = "active"
		}
		fmt.Printf("%-26s %-20s %-10s %s\n", in.ID, in.Name, state, domain.ResolveIcon(in.Icon))
	}
	return nil
}

func (a *app) find(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: eduadmin search <query>")
	}
	query := strings.Join(args, " ")

	// Build the index from cached collections.
	courses, err := a.content.Courses(ctx)
	if err != nil {
		return err
	}
	a.search.IndexCourses(courses)
	interests, err := a.interests.Interests(ctx)
	if err != nil {
		return err
	}
	a.search.IndexInterests(interests)

	results := a.search.Search(query)
	if len(results) == 0 {
		fmt.Println("No matches")
		return nil
	}
	for _, r := range results {
		fmt.Printf("%-9s %-26s %s\n", r.Kind, r.ID, r.Name)
	}
	return nil
}
