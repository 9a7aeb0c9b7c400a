package models

// Fact is a single human-readable DevOps fact.
type Fact string

// FactResponse is the body returned by GET /api/fact.
type FactResponse struct {
	Fact Fact `json:"fact"`
}

// DevOpsFacts returns the built-in facts in their canonical order.
// Each call returns a fresh slice.
func DevOpsFacts() []Fact {
	return []Fact{
		"DevOps is a combination of development and operations.",
		"CI/CD pipelines automate build, test, and deployment stages.",
		"Docker allows apps to run in isolated environments.",
		"Terraform helps manage infrastructure as code.",
		"Ansible uses YAML playbooks to automate server configuration.",
		"Jenkins is a popular open-source CI/CD tool.",
		"DevOps encourages frequent and reliable software releases.",
		"Infrastructure as Code (IaC) enables version control for infrastructure.",
		"Monitoring is essential in every DevOps lifecycle.",
		"DevOps bridges the gap between developers and IT operations.",
	}
}
