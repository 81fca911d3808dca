package automaton

import (
	"sort"
	"strings"
)

// Determinize строит DFA, эквивалентный n, методом построения подмножеств.
// alphabet задает множество символов, по которым строятся переходы:
// символы вне alphabet не рассматриваются, даже если NFA содержит их.
//
// Состояния DFA нумеруются в порядке обнаружения при обходе в ширину,
// замыкание стартового состояния получает номер 0; алфавит обходится
// в порядке возрастания кодовых точек, поэтому два запуска на одном
// NFA дают одинаковую нумерацию. Пустое move-множество не порождает
// перехода: DFA остается частичным, мертвое состояние не материализуется.
func Determinize(n *NFA, alphabet []rune) *DFA {
	symbols := make([]rune, len(alphabet))
	copy(symbols, alphabet)
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	startClosure := EpsilonClosure(n, NewStateSet(n.Start))

	dfa := NewDFA(0)
	if label, ok := acceptLabel(n, startClosure); ok {
		dfa.Accept[0] = label
	}

	indexes := map[string]State{startClosure.Key(): 0}
	sets := []StateSet{startClosure}

	queue := []State{0}
	for len(queue) != 0 {
		current := queue[0]
		queue = queue[1:]

		currentSet := sets[current]
		for _, symbol := range symbols {
			moved := Move(n, currentSet, symbol)
			if len(moved) == 0 {
				continue
			}

			closure := EpsilonClosure(n, moved)
			next, ok := indexes[closure.Key()]
			if !ok {
				next = State(len(sets))
				indexes[closure.Key()] = next
				sets = append(sets, closure)
				queue = append(queue, next)

				if label, ok := acceptLabel(n, closure); ok {
					dfa.Accept[next] = label
				}
			}
			dfa.AddTransition(current, symbol, next)
		}
	}

	return dfa
}

// acceptLabel возвращает метку допускающего состояния DFA,
// соответствующего множеству set: метки всех допускающих NFA-состояний
// из set, соединенные через ", " в порядке возрастания номеров состояний.
// Возвращает false, если set не содержит допускающих состояний.
func acceptLabel(n *NFA, set StateSet) (string, bool) {
	var labels []string
	for _, state := range set.Sorted() {
		if label, ok := n.Accept[state]; ok {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return "", false
	}
	return strings.Join(labels, ", "), true
}
