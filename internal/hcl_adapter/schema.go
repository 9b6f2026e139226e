package hcl_adapter

// fileRoot decodes every top-level block a manifest file may contain.
type fileRoot struct {
	Modules []*moduleBlock `hcl:"module,block"`
}

// moduleBlock is the HCL shape of one module manifest.
//
//	module "Name" {
//	  pch_usage            = pch.use_explicit_or_shared
//	  public_dependencies  = ["Core"]
//	  private_dependencies = ["Slate"]
//	  group "UI" { ... }
//	}
type moduleBlock struct {
	Name                string        `hcl:"name,label"`
	PCHUsage            *string       `hcl:"pch_usage,optional"`
	Version             *string       `hcl:"version,optional"`
	Description         *string       `hcl:"description,optional"`
	PublicDependencies  []string      `hcl:"public_dependencies,optional"`
	PrivateDependencies []string      `hcl:"private_dependencies,optional"`
	Groups              []*groupBlock `hcl:"group,block"`
}

// groupBlock is a labelled batch of dependencies with one visibility.
type groupBlock struct {
	Label      string   `hcl:"label,label"`
	Visibility string   `hcl:"visibility"`
	Modules    []string `hcl:"modules"`
}
