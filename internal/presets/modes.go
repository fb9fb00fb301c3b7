package presets

// Preset is a titled mode string.
type Preset struct {
	Title string
	Mode  string
}

// Modes returns the preset list in menu order.
func Modes() []Preset {
	return []Preset{
		{"23/3 - Conway's Original Game Of Life", "23/3|random"},
		{"23/3 - Conway's Original Game Of Life - Nice", "23/3|nice|+20x20"},
		{"23/3 - Conway's Original Game Of Life - Glider Gun", "23/3|glider-gun"},
		{"1357/1357 - Copyworld", "1357/1357|cell1|+20x20"},
		{"12345/3 - Labyrinth", "12345/3|cell1|+20x20"},
		{"0123/01234 - Blink", "0123/01234|random"},
		{"01234678/0123478 - Anti-Conway", "01234678/0123478|random"},
		{"02468/02468 - Anti-Copyworld", "02468/02468|cell1|+20x20"},
		{"02468/02468 - Anti-Copyworld - Clean", "02468/02468|clean|+20x20|200x200|nogrid|1ms"},
		{"012345678/3 - Growing Cancer", "012345678/3|cell1|+20x20"},
		{"45678/5678 - Majorities", "45678/5678|random"},
		{"2468/2468 - H2O - Chemical Balance", "2468/2468|h2o|+20x20"},
		{"23/3 - Line", "23/3|line|+100x110|400x221|1ms|nogrid"},
	}
}
