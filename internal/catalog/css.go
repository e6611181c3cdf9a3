package catalog

func cssSets() []*Set {
	return []*Set{cssBeginner(), cssIntermediate(), cssAdvanced()}
}

func cssBeginner() *Set {
	return &Set{
		Language: "css",
		Level:    LevelBeginner,
		Exercises: []Exercise{
			{
				Title:       "Text Colors",
				Description: "Style headings and paragraphs with colors.",
				Task:        "Make all <h1> elements red and all <p> elements blue",
				InitialCode: "/* Write your CSS below */\n",
				Solution:    "h1 {\n  color: red;\n}\np {\n  color: blue;\n}",
				Points:      10,
				Hints: []string{
					"Use the color property",
					"Select elements by their tag name",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `h1\s*{\s*color\s*:\s*red\s*;?\s*}`) &&
						has(c, `p\s*{\s*color\s*:\s*blue\s*;?\s*}`)
				},
			},
			{
				Title:       "Font Styling",
				Description: "Control font size, family and weight.",
				Task:        "Give <h1> a font-size of 24px in the Arial family, and make <p> text bold",
				InitialCode: "/* Write your CSS below */\n",
				Solution:    "h1 {\n  font-size: 24px;\n  font-family: Arial, sans-serif;\n}\np {\n  font-weight: bold;\n}",
				Points:      10,
				Hints: []string{
					"font-size values need a unit",
					"font-weight: bold makes text heavy",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `h1\s*{[^}]*font-size\s*:\s*24px[^}]*}`) &&
						has(c, `h1\s*{[^}]*font-family\s*:\s*arial`) &&
						has(c, `p\s*{[^}]*font-weight\s*:\s*bold[^}]*}`)
				},
			},
			{
				Title:       "Margins and Padding",
				Description: "Add breathing room around elements.",
				Task:        "Give <h1> a padding of 20px and <p> a margin of 10px",
				InitialCode: "/* Write your CSS below */\n",
				Solution:    "h1 {\n  padding: 20px;\n}\np {\n  margin: 10px;\n}",
				Points:      10,
				Hints: []string{
					"padding is space inside the border",
					"margin is space outside the border",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `h1\s*{[^}]*padding\s*:\s*20px[^}]*}`) &&
						has(c, `p\s*{[^}]*margin\s*:\s*10px[^}]*}`)
				},
			},
			{
				Title:       "Background Colors",
				Description: "Paint element backgrounds.",
				Task:        "Give <h1> a yellow background and <p> a background of #f0f0f0",
				InitialCode: "/* Write your CSS below */\n",
				Solution:    "h1 {\n  background-color: yellow;\n}\np {\n  background-color: #f0f0f0;\n}",
				Points:      10,
				Hints: []string{
					"The property is background-color",
					"Hex colors start with #",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `h1\s*{[^}]*background-color\s*:\s*yellow[^}]*}`) &&
						has(c, `p\s*{[^}]*background-color\s*:\s*#f0f0f0[^}]*}`)
				},
			},
		},
	}
}

func cssIntermediate() *Set {
	return &Set{
		Language: "css",
		Level:    LevelIntermediate,
		Exercises: []Exercise{
			{
				Title:       "Flexbox Layout",
				Description: "Lay out a toolbar with flexbox.",
				Task:        "Use display: flex with space-between distribution and vertically centered items",
				InitialCode: "/* Style the .toolbar container */\n",
				Solution:    ".toolbar {\n  display: flex;\n  justify-content: space-between;\n  align-items: center;\n}",
				Points:      15,
				Hints: []string{
					"justify-content controls the main axis",
					"align-items controls the cross axis",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `display\s*:\s*flex`) &&
						has(c, `justify-content\s*:\s*(space-between|space-around|space-evenly)`) &&
						has(c, `align-items\s*:\s*center`)
				},
			},
			{
				Title:       "CSS Positioning",
				Description: "Pin a header and a back-to-top button.",
				Task:        "Fix the header to the top of the viewport and fix a .back-to-top button to a screen corner",
				InitialCode: "/* Position the header and .back-to-top */\n",
				Solution:    "header {\n  position: fixed;\n  top: 0;\n  width: 100%;\n}\n.back-to-top {\n  position: fixed;\n  bottom: 20px;\n  right: 20px;\n}",
				Points:      15,
				Hints: []string{
					"position: fixed anchors to the viewport",
					"Offsets like top/bottom/right place the element",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `header\s*{[^}]*position\s*:\s*fixed[^}]*}`) &&
						has(c, `header\s*{[^}]*top\s*:\s*0[^}]*}`) &&
						has(c, `back-to-top\s*{[^}]*position\s*:\s*fixed[^}]*}`) &&
						has(c, `back-to-top\s*{[^}]*(bottom|right)\s*:\s*\d+`)
				},
			},
			{
				Title:       "CSS Grid Layout",
				Description: "Build a responsive two-column card grid.",
				Task:        "Use display: grid with two equal columns, collapsing to one column under 600px",
				InitialCode: "/* Style the .cards container */\n",
				Solution:    ".cards {\n  display: grid;\n  grid-template-columns: repeat(2, 1fr);\n}\n@media (max-width: 600px) {\n  .cards {\n    grid-template-columns: 1fr;\n  }\n}",
				Points:      15,
				Hints: []string{
					"repeat(2, 1fr) makes two equal tracks",
					"Override the columns inside a media query",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `display\s*:\s*grid`) &&
						has(c, `grid-template-columns\s*:\s*repeat\s*\(\s*2\s*,\s*1fr\s*\)`) &&
						has(c, `@media\s*\(\s*max-width\s*:\s*600px\s*\)`) &&
						has(c, `grid-template-columns\s*:\s*1fr`)
				},
			},
			{
				Title:       "Transitions and Transforms",
				Description: "Animate a card on hover.",
				Task:        "Add a transition on all properties, scale the card up on hover and change its background color",
				InitialCode: "/* Style .card and .card:hover */\n",
				Solution:    ".card {\n  transition: all 0.3s ease;\n}\n.card:hover {\n  transform: scale(1.05);\n  background-color: #eef;\n}",
				Points:      15,
				Hints: []string{
					"transition: all animates every changed property",
					"transform: scale() grows the element",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `transition\s*:\s*all`) &&
						has(c, `transform\s*:\s*scale`) &&
						has(c, `:hover\s*{[^}]*}`) &&
						has(c, `:hover\s*{[^}]*background-color`)
				},
			},
		},
	}
}

func cssAdvanced() *Set {
	return &Set{
		Language: "css",
		Level:    LevelAdvanced,
		Exercises: []Exercise{
			{
				Title:       "CSS Animations",
				Description: "Build a spinner with keyframes.",
				Task:        "Define a @keyframes spin animation rotating 360deg, apply it with the animation property and animate a border color",
				InitialCode: "/* Animate the .spinner element */\n",
				Solution:    "@keyframes spin {\n  to { transform: rotate(360deg); }\n}\n.spinner {\n  animation: spin 1s linear infinite;\n  border-top-color: #09f;\n}",
				Points:      20,
				Hints: []string{
					"@keyframes names the animation",
					"animation: name duration timing iteration",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `@keyframes\s+(spin|colorchange)`) &&
						has(c, `animation\s*:`) &&
						has(c, `rotate\s*\(\s*360deg\s*\)`) &&
						has(c, `border-(top-)?color`)
				},
			},
			{
				Title:       "CSS Custom Properties",
				Description: "Theme a page with CSS variables.",
				Task:        "Declare variables on :root, override them in a .dark-theme class, consume them with var() and transition the switch",
				InitialCode: "/* Define your theme variables */\n",
				Solution:    ":root {\n  --bg: #fff;\n  --fg: #111;\n}\n.dark-theme {\n  --bg: #111;\n  --fg: #eee;\n}\nbody {\n  background: var(--bg);\n  color: var(--fg);\n  transition: background 0.3s;\n}",
				Points:      20,
				Hints: []string{
					"Custom properties start with --",
					"var(--name) reads a property",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `:root\s*{[^}]*--`) &&
						has(c, `\.dark-theme\s*{[^}]*--`) &&
						has(c, `var\s*\(\s*--`) &&
						has(c, `transition`)
				},
			},
			{
				Title:       "CSS Grid Areas",
				Description: "Name page regions with grid-template-areas.",
				Task:        "Lay out header/sidebar/main/footer with grid-template-areas, assign each with grid-area, and stack to one column in a media query",
				InitialCode: "/* Build the page grid */\n",
				Solution:    ".page {\n  display: grid;\n  grid-template-areas:\n    \"header header\"\n    \"sidebar main\"\n    \"footer footer\";\n}\nheader { grid-area: header; }\naside { grid-area: sidebar; }\nmain { grid-area: main; }\nfooter { grid-area: footer; }\n@media (max-width: 600px) {\n  .page { grid-template-columns: 1fr; }\n}",
				Points:      20,
				Hints: []string{
					"grid-template-areas draws the layout as strings",
					"grid-area places a child into a named region",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `grid-template-areas`) &&
						has(c, `grid-area\s*:\s*(header|sidebar|main|footer)`) &&
						has(c, `@media`) &&
						has(c, `grid-template-columns\s*:\s*1fr`)
				},
			},
			{
				Title:       "Clip-path and Shapes",
				Description: "Cut elements into shapes and add hover depth.",
				Task:        "Use clip-path: polygon() on a badge, scale it on hover and give it a linear-gradient background",
				InitialCode: "/* Style the .badge element */\n",
				Solution:    ".badge {\n  clip-path: polygon(50% 0%, 100% 50%, 50% 100%, 0% 50%);\n  background: linear-gradient(45deg, #f0f, #09f);\n}\n.badge:hover {\n  transform: scale(1.1);\n}",
				Points:      20,
				Hints: []string{
					"polygon() takes percentage coordinate pairs",
					"Gradients are backgrounds, not colors",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `clip-path\s*:\s*polygon`) &&
						has(c, `transform\s*:\s*scale`) &&
						has(c, `:hover`) &&
						has(c, `linear-gradient`)
				},
			},
		},
	}
}
