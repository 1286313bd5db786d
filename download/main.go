// download fetches the playthroughs uploaded by players and saves each one to
// a file that the game can replay. It also replays every playthrough it
// can, to list the scores and regression ids.
package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/marisvali/suika1/sim"
)

func main() {
	DownloadRecordings()
}

func DownloadRecordings() {
	db := ConnectToDbSql()
	defer func(db *sql.DB) { Check(db.Close()) }(db)
	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"COALESCE(end_moment, start_moment), " +
		"user, " +
		"release_version, " +
		"simulation_version, " +
		"input_version, " +
		"id, " +
		"playthrough " +
		"FROM playthroughs")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.endMoment, &row.user,
			&row.releaseVersion, &row.simulationVersion, &row.inputVersion,
			&row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}
	Check(rows.Err())

	for i := range dbRows {
		dir := dbRows[i].user
		_ = os.Mkdir(dir, 0755)
		m := dbRows[i].startMoment
		// The extension holds both the simulation and input versions:
		// .suika1-1-1
		filename := fmt.Sprintf(
			"%s/%d%02d%02d-%02d%02d%02d.suika1-%d-%d", dir, m.Year(),
			m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
			dbRows[i].simulationVersion, dbRows[i].inputVersion)
		WriteFile(filename, dbRows[i].data)
		Summarize(filename, dbRows[i].data)
	}
}

// Summarize replays a playthrough and prints its final score and regression
// id. Playthroughs recorded with other versions of the game are only saved.
func Summarize(filename string, data []byte) {
	p, err := sim.DeserializePlaythrough(data)
	if errors.Is(err, sim.ErrIncompatiblePlaythrough) {
		log.Printf("%s: %v", filename, err)
		return
	}
	if err != nil {
		log.Printf("%s: can't read playthrough: %v", filename, err)
		return
	}
	s, err := sim.NewSessionFromPlaythrough(&p)
	if err != nil {
		log.Printf("%s: %v", filename, err)
		return
	}
	for _, input := range p.History {
		s.Step(input)
	}
	id, err := sim.RegressionId(&p)
	Check(err)
	fmt.Printf("%s id=%s ticks=%d score=%d ended=%t regression=%s\n",
		filename, p.Id, s.Ticks(), s.Score(), s.Ended(), id)
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("SUIKA1_DBUSER"),
		Passwd:               os.Getenv("SUIKA1_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("SUIKA1_DBADDR"),
		DBName:               os.Getenv("SUIKA1_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

type dbRow struct {
	startMoment       time.Time
	endMoment         time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
