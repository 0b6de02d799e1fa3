package lib

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	vlib "github.com/mcuadros/go-version"
)

/*
	The feeder store remembers how far each tape has been used, so the
	next board continues on the same reel where the previous one stopped.
*/

var (
	TAPES_BKT = []byte("tapes")
	META_BKT  = []byte("meta")
)

const StoreVersion = "1.0.0"

type TapeState struct {
	Name    string
	Keys    []string
	Cursor  int
	Updated time.Time
}

/*
	return an encoded object as bytes
*/
func Marshal(v interface{}) ([]byte, error) {
	b := new(bytes.Buffer)
	err := gob.NewEncoder(b).Encode(v)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

/*
	return a decoded object from bytes
*/
func Unmarshal(data []byte, v interface{}) error {
	b := bytes.NewBuffer(data)
	return gob.NewDecoder(b).Decode(v)
}

type FeederStore struct {
	db *bolt.DB
}

/*
	Create or open the feeder store at path
*/
func OpenFeederStore(path string) (*FeederStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(TAPES_BKT); err != nil {
			return err
		}
		meta, err := tx.CreateBucketIfNotExists(META_BKT)
		if err != nil {
			return err
		}

		version := meta.Get([]byte("version"))
		if version == nil {
			return meta.Put([]byte("version"), []byte(StoreVersion))
		}
		if vlib.CompareSimple(string(version), StoreVersion) == 1 {
			return fmt.Errorf("feeder store %s was written by a newer version (%s)", path, version)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &FeederStore{db: db}, nil
}

func (s *FeederStore) Close() error {
	return s.db.Close()
}

/*
	Restore moves every tape of the configuration to its stored cursor.
	Tapes that were never stored start at the beginning.
*/
func (s *FeederStore) Restore(config *PnPConfig) error {
	return s.db.View(func(tx *bolt.Tx) error {
		tapes := tx.Bucket(TAPES_BKT)
		for _, tape := range config.Tapes() {
			data := tapes.Get([]byte(tape.Name))
			if data == nil {
				continue
			}

			state := TapeState{}
			if err := Unmarshal(data, &state); err != nil {
				return fmt.Errorf("tape %q: %w", tape.Name, err)
			}
			if err := tape.Seek(state.Cursor); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *FeederStore) Save(config *PnPConfig) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		tapes := tx.Bucket(TAPES_BKT)
		for idx, tape := range config.Tapes() {
			data, err := Marshal(TapeState{
				Name:    tape.Name,
				Keys:    config.KeysFor(idx),
				Cursor:  tape.Cursor(),
				Updated: time.Now(),
			})
			if err != nil {
				return err
			}

			if err := tapes.Put([]byte(tape.Name), data); err != nil {
				return err
			}
		}
		return nil
	})
}

/*
	All stored tape states, ordered by tape name.
*/
func (s *FeederStore) States() ([]TapeState, error) {
	states := []TapeState{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(TAPES_BKT).ForEach(func(k, v []byte) error {
			state := TapeState{}
			if err := Unmarshal(v, &state); err != nil {
				return fmt.Errorf("tape %q: %w", k, err)
			}
			states = append(states, state)
			return nil
		})
	})

	return states, err
}
