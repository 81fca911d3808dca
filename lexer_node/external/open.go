package external

// Automata объект синглтон для работы с хранилищем автоматов.
var Automata *AutomataStore

// InitExternal инициализирует внешние ресурсы узла.
func InitExternal(cfg *StorageConfig) error {
	var err error
	Automata, err = NewAutomataStore(cfg)
	if err != nil {
		return err
	}
	return nil
}

// CloseExternal освобождает внешние ресурсы узла.
func CloseExternal() error {
	if Automata == nil {
		return nil
	}
	return Automata.Close()
}
