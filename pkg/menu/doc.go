/*
Package menu builds navigation stacks from declarative menu files.

A menu file is YAML:

	title: Main Menu
	animation_delay: 500ms
	retries: 2
	start: home
	screens:
	  home:
	    prompt: What now?
	    options:
	      - label: Settings
	        push: settings
	      - label: Greet
	        say: Hello there!
	      - label: Quit
	        quit: true
	  settings:
	    prompt: Settings
	    options:
	      - label: Back
	        pop: true

Every screen becomes a choice prompt; the user answers with the option's
number or label. Each option carries exactly one action: push another
screen, pop back, say something (and show the menu again) or quit.
*/
package menu
