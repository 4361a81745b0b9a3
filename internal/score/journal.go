package score

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// MemoryDSN keeps the journal for the lifetime of the process only.
const MemoryDSN = ":memory:"

// SQLiteJournal records the judgements of each run so the end screen can
// show tier counts and timing spread.
type SQLiteJournal struct {
	db    *sql.DB
	run   int64
	level string
}

func OpenJournal(dsn string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", dsn)
	if nil != err {
		return nil, errors.Wrap(err, "unable to open journal")
	}
	// an in-memory database lives on a single connection
	db.SetMaxOpenConns(1)

	initStatement := `
	create table if not exists runs
	  (
		  id integer not null primary key,
		  level text,
		  started integer
	  );
	create table if not exists judgements
	  (
		  id integer not null primary key,
		  run integer not null references runs(id),
		  frame integer,
		  multiplier integer,
		  tier integer,
		  distance integer,
		  forced integer
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return nil, errors.Wrap(err, "unable to create journal tables")
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) Begin(level string) error {
	res, err := j.db.Exec("insert into runs(level, started) values(?, ?)", level, time.Now().Unix())
	if nil != err {
		return errors.Wrapf(err, "unable to begin run for %s", level)
	}
	id, err := res.LastInsertId()
	if nil != err {
		return errors.Wrap(err, "unable to read run id")
	}
	j.run = id
	j.level = level
	return nil
}

func (j *SQLiteJournal) Record(frame int, multiplier int, jm Judgement) error {
	if j.run == 0 {
		return errors.New("no run in progress")
	}
	forced := 0
	if jm.Forced {
		forced = 1
	}
	_, err := j.db.Exec(
		"insert into judgements(run, frame, multiplier, tier, distance, forced) values(?, ?, ?, ?, ?, ?)",
		j.run, frame, multiplier, int(jm.Tier), jm.Distance, forced,
	)
	return errors.Wrap(err, "unable to record judgement")
}

func (j *SQLiteJournal) Summary() (Summary, error) {
	summary := Summary{Level: j.level, Counts: map[Tier]int{}}
	rows, err := j.db.Query("select tier, count(*) from judgements where run = ? group by tier", j.run)
	if nil != err {
		return summary, errors.Wrap(err, "unable to count judgements")
	}
	for rows.Next() {
		var tier, count int
		if err := rows.Scan(&tier, &count); nil != err {
			rows.Close()
			return summary, errors.Wrap(err, "unable to scan tier count")
		}
		summary.Counts[Tier(tier)] = count
		summary.Hits += count
	}
	rows.Close()
	if err := rows.Err(); nil != err {
		return summary, errors.Wrap(err, "unable to count judgements")
	}

	rows, err = j.db.Query("select distance from judgements where run = ? and forced = 0", j.run)
	if nil != err {
		return summary, errors.Wrap(err, "unable to load distances")
	}
	defer rows.Close()
	distances := []int{}
	total := 0
	for rows.Next() {
		var d int
		if err := rows.Scan(&d); nil != err {
			return summary, errors.Wrap(err, "unable to scan distance")
		}
		distances = append(distances, d)
		total += d
	}
	if len(distances) > 0 {
		summary.Mean = float64(total) / float64(len(distances))
	}
	summary.Stdev = stdev(distances, summary.Mean)
	return summary, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	if nil == j.db {
		return nil
	}
	return j.db.Close()
}
