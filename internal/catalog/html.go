package catalog

func htmlSets() []*Set {
	return []*Set{htmlBeginner(), htmlIntermediate(), htmlAdvanced()}
}

func htmlBeginner() *Set {
	return &Set{
		Language: "html",
		Level:    LevelBeginner,
		Exercises: []Exercise{
			{
				Title:       "HTML Document Type",
				Description: "Understanding the basics of HTML document structure",
				Task:        "What is a correct HTML markup for the document type declaration?",
				Solution:    "<!DOCTYPE html>",
				Points:      10,
				Hints: []string{
					"It must be the very first line in your HTML document",
				},
				Validate: matchesSolution("<!DOCTYPE html>"),
			},
			{
				Title:       "HTML Basic Structure",
				Description: "Learn about the essential HTML elements",
				Task:        "Which set of tags is required in a valid HTML document?",
				Solution:    "<html>, <head>, and <body>",
				Points:      10,
				Hints: []string{
					"Every HTML document has the same three-part skeleton",
				},
				Validate: matchesSolution("<html>, <head>, and <body>"),
			},
			{
				Title:       "HTML Headings",
				Description: "Understanding HTML heading levels",
				Task:        "Which heading tag represents the most important heading in HTML?",
				Solution:    "<h1>",
				Points:      10,
				Hints: []string{
					"Heading tags run from the highest level down to <h6>",
				},
				Validate: matchesSolution("<h1>"),
			},
			{
				Title:       "Creating a Basic Web Page",
				Description: "Create a simple web page with a heading and a paragraph.",
				Task:        "Add an <h1> heading that says 'My First Web Page' and a <p> paragraph that says 'Welcome to my website!'",
				InitialCode: "<!DOCTYPE html>\n<html>\n<head>\n    <title>Basic Web Page</title>\n</head>\n<body>\n    <!-- Add your code here -->\n    \n</body>\n</html>",
				Solution:    "<!DOCTYPE html>\n<html>\n<head>\n    <title>Basic Web Page</title>\n</head>\n<body>\n    <h1>My First Web Page</h1>\n    <p>Welcome to my website!</p>\n</body>\n</html>",
				Points:      10,
				Hints: []string{
					"Use <h1> tags for the main heading",
					"Use <p> tags for the paragraph",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					hasH1 := has(c, `<h1[^>]*>`) && hasSub(c, "</h1>")
					hasP := has(c, `<p[^>]*>`) && hasSub(c, "</p>")
					return hasH1 && hasP
				},
			},
		},
	}
}

func htmlIntermediate() *Set {
	return &Set{
		Language: "html",
		Level:    LevelIntermediate,
		Exercises: []Exercise{
			{
				Title:       "Building a Data Table",
				Description: "Create a student grades table with headers and rows.",
				Task:        "Build a <table> with Name/Subject/Grade headers and at least three data rows",
				InitialCode: "<!-- Build your table here -->\n",
				Solution:    "<table>\n  <tr><th>Name</th><th>Subject</th><th>Grade</th></tr>\n  <tr><td>Ana</td><td>Math</td><td>A</td></tr>\n  <tr><td>Ben</td><td>History</td><td>B</td></tr>\n  <tr><td>Cleo</td><td>Science</td><td>A</td></tr>\n</table>",
				Points:      15,
				Hints: []string{
					"Use <th> for the header cells",
					"Each row is a <tr>, each data cell a <td>",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `<table[^>]*>.*</table>`) &&
						has(c, `<th[^>]*>name</th>`) &&
						has(c, `<th[^>]*>subject</th>`) &&
						has(c, `<th[^>]*>grade</th>`) &&
						count(c, `<tr[^>]*>`) >= 3 &&
						count(c, `<td[^>]*>`) >= 9
				},
			},
			{
				Title:       "Contact Form",
				Description: "Create a contact form with labeled fields.",
				Task:        "Build a <form> with a text input, an email input, a <textarea> and a <label> for each field",
				InitialCode: "<!-- Build your form here -->\n",
				Solution:    "<form>\n  <label for=\"name\">Name</label>\n  <input type=\"text\" id=\"name\">\n  <label for=\"email\">Email</label>\n  <input type=\"email\" id=\"email\">\n  <label for=\"msg\">Message</label>\n  <textarea id=\"msg\"></textarea>\n</form>",
				Points:      15,
				Hints: []string{
					"input type=\"text\" and type=\"email\" cover the two inputs",
					"Connect labels with the for attribute",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `<form[^>]*>.*</form>`) &&
						has(c, `<input[^>]*type=["']text["'][^>]*>`) &&
						has(c, `<input[^>]*type=["']email["'][^>]*>`) &&
						has(c, `<textarea[^>]*>.*</textarea>`) &&
						count(c, `<label[^>]*>`) >= 3
				},
			},
			{
				Title:       "Navigation Menu",
				Description: "Create a site navigation with in-page links.",
				Task:        "Build a <nav> containing a <ul> with at least four <li> links to #home, #about, #services and #contact",
				InitialCode: "<!-- Build your navigation here -->\n",
				Solution:    "<nav>\n  <ul>\n    <li><a href=\"#home\">Home</a></li>\n    <li><a href=\"#about\">About</a></li>\n    <li><a href=\"#services\">Services</a></li>\n    <li><a href=\"#contact\">Contact</a></li>\n  </ul>\n</nav>",
				Points:      15,
				Hints: []string{
					"Wrap the list in a <nav> element",
					"Anchor links use href=\"#section\"",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `<nav[^>]*>.*</nav>`) &&
						has(c, `<ul[^>]*>.*</ul>`) &&
						count(c, `<li[^>]*>`) >= 4 &&
						hasSub(c, `href="#home"`) &&
						hasSub(c, `href="#about"`) &&
						hasSub(c, `href="#services"`) &&
						hasSub(c, `href="#contact"`)
				},
			},
			{
				Title:       "Semantic Page Layout",
				Description: "Structure a page with semantic HTML5 elements.",
				Task:        "Use <header>, <nav>, <main>, <article> and <footer> with at least one heading",
				InitialCode: "<!-- Build a semantic layout here -->\n",
				Solution:    "<header>\n  <h1>My Site</h1>\n  <nav><a href=\"#home\">Home</a></nav>\n</header>\n<main>\n  <article>\n    <h2>Welcome</h2>\n    <p>Main content.</p>\n  </article>\n</main>\n<footer><p>&copy; 2024</p></footer>",
				Points:      15,
				Hints: []string{
					"Semantic elements replace generic <div> wrappers",
					"Put the article inside <main>",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					for _, tag := range []string{"header", "nav", "main", "article", "footer"} {
						if !has(c, `<`+tag+`[^>]*>.*</`+tag+`>`) {
							return false
						}
					}
					return has(c, `<h[1-3][^>]*>`)
				},
			},
		},
	}
}

func htmlAdvanced() *Set {
	return &Set{
		Language: "html",
		Level:    LevelAdvanced,
		Exercises: []Exercise{
			{
				Title:       "Responsive Image Gallery",
				Description: "Build a gallery of responsive images with captions.",
				Task:        "Create at least three <figure> elements, each with a <picture> using media-based <source> entries, a <figcaption> and alt text",
				InitialCode: "<!-- Build your gallery here -->\n",
				Solution:    "<figure>\n  <picture>\n    <source media=\"(min-width: 800px)\" srcset=\"mountain-large.jpg\">\n    <img src=\"mountain-small.jpg\" alt=\"A mountain\">\n  </picture>\n  <figcaption>Mountain</figcaption>\n</figure>\n<figure>\n  <picture>\n    <source media=\"(min-width: 800px)\" srcset=\"lake-large.jpg\">\n    <img src=\"lake-small.jpg\" alt=\"A lake\">\n  </picture>\n  <figcaption>Lake</figcaption>\n</figure>\n<figure>\n  <picture>\n    <source media=\"(min-width: 800px)\" srcset=\"forest-large.jpg\">\n    <img src=\"forest-small.jpg\" alt=\"A forest\">\n  </picture>\n  <figcaption>Forest</figcaption>\n</figure>",
				Points:      20,
				Hints: []string{
					"<picture> lets the browser pick a source per media query",
					"Every <img> needs an alt attribute",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return count(c, `<figure[^>]*>.*?</figure>`) >= 3 &&
						count(c, `<picture[^>]*>.*?</picture>`) >= 3 &&
						count(c, `<source[^>]*media=`) >= 3 &&
						count(c, `<figcaption[^>]*>.*?</figcaption>`) >= 3 &&
						count(c, `alt=["'][^"']*["']`) >= 3
				},
			},
			{
				Title:       "Custom Form Validation",
				Description: "Build a registration form with pattern-based validation.",
				Task:        "Create a novalidate <form> with pattern attributes for username (alphanumeric 5-15), a phone pattern (123-456-7890 style), at least three required fields and an error container per field",
				InitialCode: "<!-- Build your form here -->\n",
				Solution:    "<form novalidate>\n  <input name=\"username\" pattern=\"[a-z0-9]{5,15}\" required>\n  <div class=\"error\"></div>\n  <input name=\"phone\" pattern=\"[0-9]{3}-[0-9]{3}-[0-9]{4}\" required>\n  <div class=\"error\"></div>\n  <input name=\"email\" type=\"email\" required>\n  <div class=\"error\"></div>\n</form>",
				Points:      20,
				Hints: []string{
					"novalidate turns off native bubbles so your own messages show",
					"pattern takes a regular expression",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `<form[^>]*novalidate[^>]*>.*</form>`) &&
						has(c, `pattern=["'](\^)?\[a-z0-9\]\{5,15\}(\$)?["']`) &&
						has(c, `pattern=["']\[0-9\]\{3\}-\[0-9\]\{3\}-\[0-9\]\{4\}["']`) &&
						count(c, `required`) >= 3 &&
						count(c, `class=["']error["']`) >= 3
				},
			},
			{
				Title:       "Accessible Data Table",
				Description: "Build a screen-reader friendly data table.",
				Task:        "Create a <table role=\"grid\"> with a <caption>, at least four scope=\"col\" headers, headers attributes on data cells, data-label attributes and an aria-label",
				InitialCode: "<!-- Build your table here -->\n",
				Solution:    "<table role=\"grid\" aria-label=\"Quarterly results\">\n  <caption>Quarterly results</caption>\n  <tr>\n    <th scope=\"col\" id=\"q1\">Q1</th><th scope=\"col\" id=\"q2\">Q2</th>\n    <th scope=\"col\" id=\"q3\">Q3</th><th scope=\"col\" id=\"q4\">Q4</th>\n  </tr>\n  <tr>\n    <td headers=\"q1\" data-label=\"Q1\">10</td><td headers=\"q2\" data-label=\"Q2\">20</td>\n    <td headers=\"q3\" data-label=\"Q3\">30</td><td headers=\"q4\" data-label=\"Q4\">40</td>\n  </tr>\n</table>",
				Points:      20,
				Hints: []string{
					"scope=\"col\" ties a header to its column",
					"headers on a <td> lists the ids of its header cells",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `<table[^>]*role=["']grid["'][^>]*>`) &&
						has(c, `<caption[^>]*>.*?</caption>`) &&
						count(c, `scope=["']col["']`) >= 4 &&
						count(c, `headers=["'][^"']*["']`) >= 3 &&
						count(c, `data-label=["'][^"']*["']`) >= 3 &&
						has(c, `aria-label=["'][^"']*["']`)
				},
			},
			{
				Title:       "Rich Article Markup",
				Description: "Mark up a long-form article with modern semantic elements.",
				Task:        "Build an <article> containing a <blockquote> with <cite>, a <details>/<summary> block, a <figure> with <figcaption>, an <aside> and a <time> with datetime",
				InitialCode: "<!-- Build your article here -->\n",
				Solution:    "<article>\n  <h1>Title</h1>\n  <time datetime=\"2024-05-01\">May 1, 2024</time>\n  <blockquote>Quoted words <cite>Author</cite></blockquote>\n  <details><summary>More</summary><p>Extra detail.</p></details>\n  <figure><img src=\"pic.jpg\" alt=\"pic\"><figcaption>A picture</figcaption></figure>\n  <aside><p>Related reading</p></aside>\n</article>",
				Points:      20,
				Hints: []string{
					"<details> needs a <summary> as its first child",
					"datetime uses an ISO date",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `<article[^>]*>.*</article>`) &&
						has(c, `<blockquote[^>]*>.*<cite>.*</cite>.*</blockquote>`) &&
						has(c, `<details[^>]*>.*<summary>.*</summary>.*</details>`) &&
						has(c, `<figure[^>]*>.*<figcaption>.*</figcaption>.*</figure>`) &&
						has(c, `<aside[^>]*>.*</aside>`) &&
						has(c, `<time[^>]*datetime=["'][^"']*["'][^>]*>.*</time>`)
				},
			},
		},
	}
}
