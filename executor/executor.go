package executor

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jose-oyuko/josedb/db"
	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/logger"
	"github.com/jose-oyuko/josedb/parser"
	"github.com/jose-oyuko/josedb/table"
)

const commandCacheSize = 256

// Result is what Execute returns for one statement: a human-readable
// Message, and Rows when the statement was a query.
type Result struct {
	Message string
	Rows    []table.ResultRow
}

// Executor runs parsed Commands against a Database.
type Executor struct {
	db     *db.Database
	parser *parser.Parser
	log    *logger.Logger
	cache  *lru.Cache[string, *parser.Command]
}

// New creates an Executor over database, auto-persisting to database's
// configured path after every successful mutation. A nil log defaults to
// logger.Default().
func New(database *db.Database, log *logger.Logger) *Executor {
	if log == nil {
		log = logger.Default()
	}
	cache, _ := lru.New[string, *parser.Command](commandCacheSize)
	return &Executor{
		db:     database,
		parser: parser.New(),
		log:    log,
		cache:  cache,
	}
}

// Execute parses and runs one statement's text.
func (e *Executor) Execute(text string) (Result, error) {
	cmd, err := e.parse(text)
	if err != nil {
		return Result{}, err
	}

	switch cmd.Kind {
	case parser.KindCreateTable:
		return e.execCreateTable(cmd)
	case parser.KindDropTable:
		return e.execDropTable(cmd)
	case parser.KindInsert:
		return e.execInsert(cmd)
	case parser.KindSelect:
		return e.execSelect(cmd)
	case parser.KindUpdate:
		return e.execUpdate(cmd)
	case parser.KindDelete:
		return e.execDelete(cmd)
	default:
		return Result{}, &dberr.ParseError{Text: text, Reason: "unknown command kind"}
	}
}

// parse consults the cache before invoking the parser.
func (e *Executor) parse(text string) (*parser.Command, error) {
	if cmd, ok := e.cache.Get(text); ok {
		return cmd, nil
	}
	cmd, err := e.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	e.cache.Add(text, cmd)
	return cmd, nil
}

// autoPersist saves the database if it has a configured path, logging and
// returning any IOError. The in-memory mutation that already succeeded is
// not rolled back.
func (e *Executor) autoPersist() error {
	if err := e.db.Save(); err != nil {
		e.log.Error("auto-save failed: %v", err)
		return err
	}
	return nil
}

func (e *Executor) execCreateTable(cmd *parser.Command) (Result, error) {
	if err := e.db.CreateTable(cmd.TableName, cmd.Columns, cmd.PrimaryKey, cmd.UniqueColumns); err != nil {
		return Result{}, err
	}
	if err := e.autoPersist(); err != nil {
		return Result{}, err
	}
	e.log.Info("created table %s", cmd.TableName)
	return Result{Message: fmt.Sprintf("table %s created", cmd.TableName)}, nil
}

func (e *Executor) execDropTable(cmd *parser.Command) (Result, error) {
	if err := e.db.DropTable(cmd.TableName); err != nil {
		return Result{}, err
	}
	if err := e.autoPersist(); err != nil {
		return Result{}, err
	}
	e.log.Info("dropped table %s", cmd.TableName)
	return Result{Message: fmt.Sprintf("table %s dropped", cmd.TableName)}, nil
}

func (e *Executor) execInsert(cmd *parser.Command) (Result, error) {
	t, err := e.db.GetTable(cmd.TableName)
	if err != nil {
		return Result{}, err
	}
	rowID, err := t.InsertRow(cmd.Values)
	if err != nil {
		return Result{}, err
	}
	if err := e.autoPersist(); err != nil {
		return Result{}, err
	}
	return Result{Message: fmt.Sprintf("inserted row %d into %s", rowID, cmd.TableName)}, nil
}

func (e *Executor) execSelect(cmd *parser.Command) (Result, error) {
	t, err := e.db.GetTable(cmd.TableName)
	if err != nil {
		return Result{}, err
	}

	if cmd.Join != nil {
		other, err := e.db.GetTable(cmd.Join.Table)
		if err != nil {
			return Result{}, err
		}
		rows, err := t.InnerJoin(cmd.Join.LeftColumn, other, cmd.Join.RightColumn, cmd.Where, cmd.Projection)
		if err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf("%d row(s)", len(rows)), Rows: rows}, nil
	}

	columns := make([]string, len(cmd.Projection))
	for i, c := range cmd.Projection {
		if c.Table != "" {
			columns[i] = c.Table + "." + c.Column
		} else {
			columns[i] = c.Column
		}
	}
	rows, err := t.Select(cmd.Where, columns)
	if err != nil {
		return Result{}, err
	}
	return Result{Message: fmt.Sprintf("%d row(s)", len(rows)), Rows: rows}, nil
}

func (e *Executor) execUpdate(cmd *parser.Command) (Result, error) {
	t, err := e.db.GetTable(cmd.TableName)
	if err != nil {
		return Result{}, err
	}
	n, err := t.Update(cmd.Where, cmd.Set)
	if err != nil {
		return Result{}, err
	}
	if err := e.autoPersist(); err != nil {
		return Result{}, err
	}
	return Result{Message: fmt.Sprintf("updated %d row(s)", n)}, nil
}

func (e *Executor) execDelete(cmd *parser.Command) (Result, error) {
	t, err := e.db.GetTable(cmd.TableName)
	if err != nil {
		return Result{}, err
	}
	n, err := t.Delete(cmd.Where)
	if err != nil {
		return Result{}, err
	}
	if err := e.autoPersist(); err != nil {
		return Result{}, err
	}
	return Result{Message: fmt.Sprintf("deleted %d row(s)", n)}, nil
}
