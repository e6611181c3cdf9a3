package catalog

func phpSets() []*Set {
	return []*Set{phpBeginner(), phpIntermediate(), phpAdvanced()}
}

// PHP 初级沿用原有判题方式：与参考答案做规范化全等比较
func phpBeginner() *Set {
	helloSolution := "<?php\necho \"Hello, World!\";\n?>"
	varsSolution := "<?php\n$name = \"John\";\n$age = 25;\necho \"My name is \" . $name . \" and I am \" . $age . \" years old.\";\n?>"
	mathSolution := "<?php\n$num1 = 10;\n$num2 = 5;\necho \"Sum: \" . ($num1 + $num2) . \"\\n\";\necho \"Difference: \" . ($num1 - $num2) . \"\\n\";\necho \"Product: \" . ($num1 * $num2) . \"\\n\";\necho \"Quotient: \" . ($num1 / $num2);\n?>"
	condSolution := "<?php\n$score = 85;\nif ($score >= 90) {\n    echo \"Grade: A\";\n} elseif ($score >= 80) {\n    echo \"Grade: B\";\n} else {\n    echo \"Grade: C\";\n}\n?>"
	loopSolution := "<?php\nfor ($i = 1; $i <= 5; $i++) {\n    echo \"Number: \" . $i . \"\\n\";\n}\n?>"

	return &Set{
		Language: "php",
		Level:    LevelBeginner,
		Exercises: []Exercise{
			{
				Title:       "Basic Output",
				Description: "Write PHP code to display a greeting message",
				Task:        "Print \"Hello, World!\" with echo",
				InitialCode: "<?php\n// Write your PHP code here to print a greeting\n\n?>",
				Solution:    helloSolution,
				Points:      10,
				Hints: []string{
					"Use the echo statement to output text",
					"Remember to start with <?php tag",
					"End statements with a semicolon",
				},
				Validate: matchesSolution(helloSolution),
			},
			{
				Title:       "Variables",
				Description: "Create and use variables in PHP",
				Task:        "Create $name (\"John\") and $age (25) and echo a sentence using both",
				InitialCode: "<?php\n// Create name and age variables\n$name = \"\";\n$age = ;\n\n// Print your message here\n\n?>",
				Solution:    varsSolution,
				Points:      10,
				Hints: []string{
					"Variables in PHP start with $",
					"You can use single or double quotes for strings",
					"Use the dot (.) operator to concatenate strings",
				},
				Validate: matchesSolution(varsSolution),
			},
			{
				Title:       "Math Operations",
				Description: "Perform basic arithmetic operations",
				Task:        "Display the sum, difference, product and quotient of $num1 and $num2",
				InitialCode: "<?php\n$num1 = 10;\n$num2 = 5;\n\n// Calculate and display the sum, difference,\n// product, and quotient of these numbers\n\n?>",
				Solution:    mathSolution,
				Points:      10,
				Hints: []string{
					"Use basic operators: +, -, *, /",
					"Store results in variables",
				},
				Validate: matchesSolution(mathSolution),
			},
			{
				Title:       "Conditionals",
				Description: "Use if-else statements to check conditions",
				Task:        "Grade $score: A for 90+, B for 80-89, C otherwise",
				InitialCode: "<?php\n$score = 85;\n\n// Write code to check the grade\n\n?>",
				Solution:    condSolution,
				Points:      10,
				Hints: []string{
					"Use if, elseif, and else statements",
					"Curly braces {} are required for multi-line blocks",
				},
				Validate: matchesSolution(condSolution),
			},
			{
				Title:       "Loops",
				Description: "Create a loop to display numbers",
				Task:        "Use a for loop to print \"Number: 1\" through \"Number: 5\"",
				InitialCode: "<?php\n// Use a for loop to print numbers 1 to 5\n\n?>",
				Solution:    loopSolution,
				Points:      10,
				Hints: []string{
					"For loops have 3 parts: initialization, condition, increment",
					"Use $i++ to increment the counter",
				},
				Validate: matchesSolution(loopSolution),
			},
		},
	}
}

func phpIntermediate() *Set {
	return &Set{
		Language: "php",
		Level:    LevelIntermediate,
		Exercises: []Exercise{
			{
				Title:       "Arrays and Loops",
				Description: "Practice working with arrays and different types of loops in PHP.",
				Task:        "Create an associative array of user data and display every entry with a foreach loop",
				InitialCode: "<?php\n// Build the $user array and loop over it\n\n?>",
				Solution:    "<?php\n$user = [\"name\" => \"John\", \"age\" => 25, \"city\" => \"Oslo\"];\nforeach ($user as $key => $value) {\n    echo $key . \": \" . $value . \"\\n\";\n}\n?>",
				Points:      15,
				Hints: []string{
					"Associative arrays map string keys to values",
					"foreach ($arr as $key => $value) walks every pair",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "foreach") &&
						hasSub(c, "=>") &&
						hasSub(c, "echo") &&
						(hasSub(c, "array(") || hasSub(c, "["))
				},
			},
			{
				Title:       "Functions and Logic",
				Description: "Create functions with complex logic and calculations.",
				Task:        "Write an isPrime($n) function using a loop and the modulo operator, and call it",
				InitialCode: "<?php\n// Write your isPrime function\n\n?>",
				Solution:    "<?php\nfunction isPrime($n) {\n    if ($n < 2) return false;\n    for ($i = 2; $i * $i <= $n; $i++) {\n        if ($n % $i == 0) return false;\n    }\n    return true;\n}\necho isPrime(13) ? \"prime\" : \"not prime\";\n?>",
				Points:      15,
				Hints: []string{
					"A prime has no divisor between 2 and its square root",
					"% gives the division remainder",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `function\s+isprime\s*\(`) &&
						hasSub(c, "for") &&
						hasSub(c, "%") &&
						hasSub(c, "return")
				},
			},
			{
				Title:       "Form Handling",
				Description: "Learn to handle form data and validate input.",
				Task:        "Read username and email from $_POST, validate them with preg_match and filter_var, and echo an error message on failure",
				InitialCode: "<?php\n// Validate the submitted form fields\n\n?>",
				Solution:    "<?php\n$username = $_POST[\"username\"] ?? \"\";\n$email = $_POST[\"email\"] ?? \"\";\nif (!preg_match(\"/^[a-z0-9]+$/i\", $username)) {\n    echo \"Invalid username\";\n} elseif (!filter_var($email, FILTER_VALIDATE_EMAIL)) {\n    echo \"Invalid email\";\n}\n?>",
				Points:      15,
				Hints: []string{
					"$_POST holds submitted form fields",
					"FILTER_VALIDATE_EMAIL checks email format",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "$_post") &&
						hasSub(c, "preg_match") &&
						hasSub(c, "filter_var") &&
						hasSub(c, "echo")
				},
			},
			{
				Title:       "File Operations",
				Description: "Work with file reading and writing operations.",
				Task:        "Write data to a file with fopen/fwrite/fclose and guard the open with error handling",
				InitialCode: "<?php\n// Write to notes.txt with error handling\n\n?>",
				Solution:    "<?php\n$handle = fopen(\"notes.txt\", \"w\");\nif ($handle === false) {\n    echo \"Could not open file\";\n} else {\n    fwrite($handle, \"saved\");\n    fclose($handle);\n}\n?>",
				Points:      15,
				Hints: []string{
					"fopen returns false on failure",
					"Always fclose what you fopen",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "fopen") &&
						hasSub(c, "fwrite") &&
						hasSub(c, "fclose") &&
						(hasSub(c, "false") || hasSub(c, "try"))
				},
			},
		},
	}
}

func phpAdvanced() *Set {
	return &Set{
		Language: "php",
		Level:    LevelAdvanced,
		Exercises: []Exercise{
			{
				Title:       "Object-Oriented Programming",
				Description: "Model entities with classes.",
				Task:        "Define a class with a constructor and a public method, then instantiate it with new",
				InitialCode: "<?php\n// Define and use your class\n\n?>",
				Solution:    "<?php\nclass Account {\n    private $owner;\n    public function __construct($owner) {\n        $this->owner = $owner;\n    }\n    public function getOwner() {\n        return $this->owner;\n    }\n}\n$acc = new Account(\"Ada\");\necho $acc->getOwner();\n?>",
				Points:      20,
				Hints: []string{
					"__construct runs when the object is created",
					"$this-> accesses instance members",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `class\s+\w+`) &&
						hasSub(c, "__construct") &&
						hasSub(c, "$this->") &&
						has(c, `new\s+\w+`)
				},
			},
			{
				Title:       "Database Operations",
				Description: "Query a database safely.",
				Task:        "Open a PDO connection and run a prepared statement with bound parameters",
				InitialCode: "<?php\n// Query the users table with PDO\n\n?>",
				Solution:    "<?php\n$pdo = new PDO(\"mysql:host=localhost;dbname=app\", \"user\", \"pass\");\n$stmt = $pdo->prepare(\"SELECT * FROM users WHERE id = ?\");\n$stmt->execute([$id]);\n$row = $stmt->fetch();\n?>",
				Points:      20,
				Hints: []string{
					"prepare + execute keeps queries injection-safe",
					"Placeholders (?) stand in for bound values",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "new pdo") &&
						hasSub(c, "prepare") &&
						hasSub(c, "execute")
				},
			},
			{
				Title:       "RESTful API Development",
				Description: "Serve JSON from an endpoint.",
				Task:        "Branch on $_SERVER['REQUEST_METHOD'], set a JSON content type header and respond with json_encode",
				InitialCode: "<?php\n// Implement the endpoint\n\n?>",
				Solution:    "<?php\nheader(\"Content-Type: application/json\");\nif ($_SERVER[\"REQUEST_METHOD\"] === \"GET\") {\n    echo json_encode([\"items\" => []]);\n} else {\n    http_response_code(405);\n    echo json_encode([\"error\" => \"method not allowed\"]);\n}\n?>",
				Points:      20,
				Hints: []string{
					"REQUEST_METHOD tells you the HTTP verb",
					"json_encode serializes arrays to JSON",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "request_method") &&
						hasSub(c, "json_encode") &&
						hasSub(c, "header")
				},
			},
			{
				Title:       "Authentication System",
				Description: "Hash and verify passwords.",
				Task:        "Hash a password with password_hash, verify it with password_verify and start a session on success",
				InitialCode: "<?php\n// Implement login verification\n\n?>",
				Solution:    "<?php\n$hash = password_hash($password, PASSWORD_DEFAULT);\nif (password_verify($input, $hash)) {\n    session_start();\n    $_SESSION[\"user\"] = $username;\n}\n?>",
				Points:      20,
				Hints: []string{
					"Never store plain-text passwords",
					"password_verify compares input against the stored hash",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "password_hash") &&
						hasSub(c, "password_verify") &&
						hasSub(c, "session_start")
				},
			},
		},
	}
}
