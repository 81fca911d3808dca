package external

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/DataDog/zstd"
	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/GDVFox/zigzin/storage"
)

var (
	// ErrNotFound автомат не найден в хранилище.
	ErrNotFound = errors.New("automaton not found")
	// ErrAlreadyExists автомат с таким именем уже записан.
	ErrAlreadyExists = errors.New("automaton already exists")
)

// StorageConfig конфигурация хранилища автоматов.
type StorageConfig struct {
	DataDir       string `yaml:"data-dir"`
	CompressLevel int    `yaml:"compress-level"`
}

// NewStorageConfig создает StorageConfig с настройками по-умолчанию.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{
		DataDir:       "./zigzin-data",
		CompressLevel: 11,
	}
}

// AutomataStore хранилище DFA-документов поверх leveldb.
// Значения сжимаются zstd перед записью. Прочитанные документы
// кэшируются, наружу отдаются только их глубокие копии,
// поэтому изменение результата не задевает хранилище.
type AutomataStore struct {
	db  *leveldb.DB
	cfg *StorageConfig

	mutex sync.RWMutex
	cache map[string]*storage.DFADocument
}

// NewAutomataStore открывает хранилище автоматов в каталоге cfg.DataDir.
func NewAutomataStore(cfg *StorageConfig) (*AutomataStore, error) {
	db, err := leveldb.OpenFile(cfg.DataDir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "can not open underlying db")
	}

	return &AutomataStore{
		db:    db,
		cfg:   cfg,
		cache: make(map[string]*storage.DFADocument),
	}, nil
}

// List возвращает имена сохраненных автоматов в алфавитном порядке.
func (s *AutomataStore) List() ([]string, error) {
	names := make([]string, 0)

	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()
	for iter.Next() {
		names = append(names, string(iter.Key()))
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "can not list automata")
	}

	sort.Strings(names)
	return names, nil
}

// Load получает DFA-документ по имени name.
func (s *AutomataStore) Load(name string) (*storage.DFADocument, error) {
	s.mutex.RLock()
	cached, ok := s.cache[name]
	s.mutex.RUnlock()
	if ok {
		return deepcopy.Copy(cached).(*storage.DFADocument), nil
	}

	value, err := s.db.Get([]byte(name), nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "can not load automaton")
	}

	data, err := zstd.Decompress(nil, value)
	if err != nil {
		return nil, errors.Wrap(err, "can not decompress automaton")
	}

	document := &storage.DFADocument{}
	if err := json.Unmarshal(data, document); err != nil {
		return nil, errors.Wrap(err, "can not unmarshal automaton")
	}

	s.mutex.Lock()
	s.cache[name] = document
	s.mutex.Unlock()

	return deepcopy.Copy(document).(*storage.DFADocument), nil
}

// Save записывает DFA-документ под именем name.
// Повторная запись под занятым именем запрещена.
func (s *AutomataStore) Save(name string, document *storage.DFADocument) error {
	key := []byte(name)

	ok, err := s.db.Has(key, nil)
	if err != nil {
		return errors.Wrap(err, "can not check automaton existence")
	}
	if ok {
		return ErrAlreadyExists
	}

	data, err := json.Marshal(document)
	if err != nil {
		return errors.Wrap(err, "can not marshal automaton")
	}

	value, err := zstd.CompressLevel(nil, data, s.cfg.CompressLevel)
	if err != nil {
		return errors.Wrap(err, "can not compress automaton")
	}

	if err := s.db.Put(key, value, nil); err != nil {
		return errors.Wrap(err, "can not save automaton")
	}
	return nil
}

// Delete удаляет автомат с именем name.
func (s *AutomataStore) Delete(name string) error {
	key := []byte(name)

	ok, err := s.db.Has(key, nil)
	if err != nil {
		return errors.Wrap(err, "can not check automaton existence")
	}
	if !ok {
		return ErrNotFound
	}

	if err := s.db.Delete(key, nil); err != nil {
		return errors.Wrap(err, "can not delete automaton")
	}

	s.mutex.Lock()
	delete(s.cache, name)
	s.mutex.Unlock()
	return nil
}

// Close закрывает хранилище.
func (s *AutomataStore) Close() error {
	return s.db.Close()
}
