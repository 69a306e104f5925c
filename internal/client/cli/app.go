package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/avolkov/storefront/internal/client/client"
	"github.com/avolkov/storefront/internal/client/config"
	"github.com/avolkov/storefront/internal/client/session"
	"github.com/avolkov/storefront/internal/filex"

	_ "modernc.org/sqlite"
)

const dataDirName = "storefront"

type App struct {
	config  *config.Config
	api     client.Client
	session *session.Store
	db      *sql.DB
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	dbPath := c.DatabasePath
	if !filepath.IsAbs(dbPath) {
		dir, err := filex.EnsureSubDir(dataDirName)
		if err != nil {
			return nil, err
		}
		dbPath = filepath.Join(dir, dbPath)
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	store := session.NewStore(db)
	if err := store.Load(ctx); err != nil {
		db.Close()
		return nil, err
	}

	api, err := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, store.Clear)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &App{config: c, api: api, session: store, db: db, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	log.Println("Welcome to the storefront CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) getStatus() string {
	u := a.session.Current()
	if u == nil {
		return ""
	}
	s := u.Email
	if u.IsAdmin {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}
